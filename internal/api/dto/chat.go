package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	Converted bool   `json:"converted"`
}
