package errors

import (
	"encoding/json"
)

// ErrorResponse is a flat, serializable representation of an error. The
// wrapped error chain is intentionally excluded; the Code, Message, and
// Context fields carry the useful diagnostic information.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON
// serialization. Non-platform errors are reported with CodeUnknown.
// Returns nil if err is nil.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if !As(err, &platformErr) {
		return &ErrorResponse{
			Code:           string(CodeUnknown),
			Message:        err.Error(),
			Classification: string(ClassificationPermanent),
		}
	}

	return &ErrorResponse{
		Code:           string(platformErr.Code()),
		Message:        platformErr.Message(),
		Classification: string(platformErr.Classification()),
		Context:        platformErr.Context(),
	}
}

// MarshalJSON serializes an error to JSON bytes.
// Returns "null" if err is nil.
func MarshalJSON(err error) ([]byte, error) {
	return json.Marshal(ToJSON(err))
}
