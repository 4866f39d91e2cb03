package dto

type CategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

type CategoryResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsCustom bool   `json:"isCustom"`
	Icon     string `json:"icon,omitempty"`
}
