package models

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // Error detail
}

// SuccessResponse is the standard JSON body Swagger documents for writes.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
