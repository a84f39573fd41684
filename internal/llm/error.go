package llm

import (
	"fmt"
)

// UnsupportedProviderError is returned when no provider is registered for an endpoint.
type UnsupportedProviderError struct {
	Endpoint string
}

func (r *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported API URL: %q", r.Endpoint)
}

// NetworkError wraps a transport failure such as a refused connection,
// a timeout or a DNS error. The message is the message of the cause.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (r *NetworkError) Error() string {
	return r.Err.Error()
}

func (r *NetworkError) Unwrap() error {
	return r.Err
}

// APIError reports a non-2xx HTTP result.
type APIError struct {
	StatusCode int
	Status     string
}

func (r *APIError) Error() string {
	return fmt.Sprintf("Error: %d - %s", r.StatusCode, r.Status)
}

// MalformedResponseError reports a successful HTTP result whose JSON does not
// have the expected shape.
type MalformedResponseError struct {
	Path   string
	Reason string
}

func (r *MalformedResponseError) Error() string {
	if r.Path == "" {
		return fmt.Sprintf("malformed response: %s", r.Reason)
	}
	return fmt.Sprintf("malformed response: %s: %s", r.Path, r.Reason)
}
