package dto

type ConvertRequest struct {
	X              string `json:"x"`
	Y              string `json:"y"`
	SourceNotation string `json:"source_notation"`
	SourceCRS      string `json:"source_crs"`
	TargetNotation string `json:"target_notation"`
	TargetCRS      string `json:"target_crs"`
}

type ConvertResponse struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XText     string  `json:"x_text"`
	YText     string  `json:"y_text"`
	Notation  string  `json:"notation"`
	SourceCRS string  `json:"source_crs"`
	TargetCRS string  `json:"target_crs"`
}
