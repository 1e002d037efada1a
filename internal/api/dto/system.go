package dto

type SystemResponse struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Projected bool   `json:"projected"`
}

type SystemCategoryResponse struct {
	Category string           `json:"category"`
	Systems  []SystemResponse `json:"systems"`
}

type ListSystemsResponse struct {
	Categories []SystemCategoryResponse `json:"categories"`
}
