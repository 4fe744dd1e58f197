package dtos

// SubmitResponse is the envelope for POST /api/forms. Success responses
// carry the new record's id; failures carry a human-readable message.
type SubmitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the envelope for listing failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
