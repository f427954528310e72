package response

type UploadResponse struct {
	Result []UploadResult `json:"result"`
}

type UploadResult struct {
	ProductID int64         `json:"product_id"`
	OfferID   string        `json:"offer_id"`
	Updated   bool          `json:"updated"`
	Errors    []UploadError `json:"errors"`
}

type UploadError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
