package handler

// Generic request-level error messages used before a service is involved
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Validation failed"
	ErrMsgMissingQueryParam     = "Missing required query parameter: %s"
	ErrMsgMissingPathParam      = "Missing required path parameter: %s"
)
