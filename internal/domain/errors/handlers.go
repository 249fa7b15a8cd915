package errors

// ErrorResponse is the single error payload returned to the event source
type ErrorResponse struct {
	Error   string `json:"error"`             // User-friendly error message
	Code    string `json:"code"`              // Business error code, e.g., "AUTHENTICATION_FAILED"
	Details string `json:"details,omitempty"` // Raw upstream body or other diagnostics
}

// NewErrorResponse builds the payload for an AppError
func NewErrorResponse(appErr AppError) *ErrorResponse {
	return &ErrorResponse{
		Error:   appErr.Message(),
		Code:    appErr.ErrorCode(),
		Details: appErr.Details(),
	}
}
