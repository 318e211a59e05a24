package apierr

// ErrorResponse is the standardized error response format of the review
// service as it gets serialized to JSON. This struct can be used to parse
// errors returned from the API and to produce them from the mock server.
type ErrorResponse struct {
	Error string `json:"error"`
}
