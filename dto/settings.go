package dto

type UpdateSettingsRequest struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

type SettingsResponse struct {
	UserID   uint   `json:"userId"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}
