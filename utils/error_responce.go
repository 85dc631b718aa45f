package utils

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// MessageResponse is a struct for plain acknowledgement response
type MessageResponse struct {
	Message string `json:"message"`
}
