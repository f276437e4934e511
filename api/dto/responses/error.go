// ABOUTME: Error body returned by every endpoint
// ABOUTME: Replaces huma's problem+json model with a flat {error} object

package responses

// ErrorResponse is the body of any non-2xx response
type ErrorResponse struct {
	Status  int      `json:"-"`
	Message string   `json:"error" doc:"Human-readable error"`
	Details []string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorResponse) GetStatus() int {
	return e.Status
}
