package dto

type UploadResponse struct {
	Success  bool       `json:"success"`
	URL      string     `json:"url"`
	Filename string     `json:"filename"`
	Sizes    VariantSet `json:"sizes"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
