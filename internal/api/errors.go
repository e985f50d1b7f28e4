// ABOUTME: Typed error for backend API failures
// ABOUTME: Carries the HTTP status and the backend's detail string when present

package api

// APIError is returned for any non-2xx backend response. Detail holds the
// backend-supplied explanation when one was present in the response body.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return "backend error: " + e.Detail
	}
	return e.Message
}
