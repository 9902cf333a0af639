package model

// Response is the envelope returned by every handler. Raw store result
// objects are never sent to clients.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// NewSuccessResponse builds a success envelope
func NewSuccessResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds an error envelope
func NewErrorResponse(message, detail string) Response {
	return Response{Success: false, Message: message, Detail: detail}
}
