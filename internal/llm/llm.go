package llm

import (
	"context"
	"maps"
	"net/http"
)

// LocalInteractiveURL marks a request that is answered by a human operator
// and must never reach the network.
const LocalInteractiveURL = "http://local+interactive"

// Provider is the capability every text-generation backend implements.
// Request building is a pure function of prompt and credential, parsing a pure
// function of the payload.
type Provider interface {
	// PrepareRequest encodes the prompt for the backend.
	PrepareRequest(ctx context.Context, prompt, credential string) (*Request, error)

	// ParseResponse extracts the answer text from a decoded JSON payload.
	ParseResponse(ctx context.Context, payload []byte) (string, error)
}

// Request is the wire request a provider wants sent. It is not modified after
// construction.
type Request struct {
	Method string
	URL    string
	Header map[string]string
	Body   []byte
}

// NewRequest returns a POST request for a JSON body.
func NewRequest(url string, header map[string]string, body []byte) *Request {
	h := map[string]string{
		"Content-Type": "application/json",
	}
	maps.Copy(h, header)
	return &Request{
		Method: http.MethodPost,
		URL:    url,
		Header: h,
		Body:   body,
	}
}

// NewInteractiveRequest returns the sentinel request for human mediated queries.
func NewInteractiveRequest() *Request {
	return &Request{
		Method: http.MethodGet,
		URL:    LocalInteractiveURL,
		Header: map[string]string{},
	}
}

func (r *Request) IsInteractive() bool {
	return r.URL == LocalInteractiveURL
}

// QueryResult is the outcome of one prompt/response cycle.
// ResponseTime is in milliseconds and always 0 for interactive queries.
type QueryResult struct {
	Prompt       string `json:"prompt" yaml:"prompt"`
	Response     string `json:"response" yaml:"response"`
	APIURL       string `json:"apiUrl" yaml:"apiUrl"`
	ResponseTime int64  `json:"responseTime" yaml:"responseTime"`
}
