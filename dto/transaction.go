package dto

type TransactionRequest struct {
	Date          string   `json:"date"`
	Description   string   `json:"description"`
	Amount        float64  `json:"amount"`
	Category      uint     `json:"category"`
	Type          string   `json:"type"`
	AttachmentURL string   `json:"attachmentUrl"`
	Tags          []string `json:"tags"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TransactionResponse struct {
	ID            uint             `json:"id"`
	Date          string           `json:"date"`
	Description   string           `json:"description"`
	Amount        float64          `json:"amount"`
	Category      CategoryResponse `json:"category"`
	Type          string           `json:"type"`
	AttachmentURL string           `json:"attachmentUrl,omitempty"`
	Tags          []TagResponse    `json:"tags"`
}

type TransactionFilters struct {
	Type     string
	Category uint
	Search   string
	Page     int
	Limit    int
}
