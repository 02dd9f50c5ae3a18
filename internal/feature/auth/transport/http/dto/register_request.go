// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// It uses gin's binding tags for validation (required fields, email format).
type RegisterReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RegisterRes represents the response for a successful registration.
type RegisterRes struct {
	AuthToken string `json:"authtoken"`
	Email     string `json:"email"`
}
