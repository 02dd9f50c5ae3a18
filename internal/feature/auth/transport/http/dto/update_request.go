package dto

// UpdateReq represents the request body for the /update endpoint.
// The account to mutate is identified by the `email` request header, not the
// body; only the new first name travels in the body.
type UpdateReq struct {
	Name string `json:"name" binding:"required"`
}

// UpdateRes represents the response for a successful profile update.
type UpdateRes struct {
	AuthToken string `json:"authtoken"`
}

// ErrorRes is the uniform error envelope returned by every auth endpoint.
type ErrorRes struct {
	Error string `json:"error"`
}
