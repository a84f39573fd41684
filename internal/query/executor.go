package query

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/qiangli/polyglot/internal/llm"
	"github.com/qiangli/polyglot/internal/log"
)

var emptyObject = []byte("{}")

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type Option func(*Executor)

// WithClient replaces the per query HTTP client factory.
func WithClient(newClient func() Doer) Option {
	return func(e *Executor) {
		e.newClient = newClient
	}
}

// Executor runs single, synchronous, stateless queries.
type Executor struct {
	resolver  *Resolver
	log       log.Logger
	newClient func() Doer
}

func NewExecutor(resolver *Resolver, logger log.Logger, opts ...Option) *Executor {
	e := &Executor{
		resolver: resolver,
		log:      logger,
		newClient: func() Doer {
			return &http.Client{}
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = log.Discard()
	}
	return e
}

// ExecuteQuery sends prompt to the backend selected by endpoint and returns
// the extracted answer. Interactive queries bypass the network and report a
// response time of 0.
//
// Errors are returned unchanged to the caller: *llm.UnsupportedProviderError,
// *llm.NetworkError, *llm.APIError and *llm.MalformedResponseError.
func (e *Executor) ExecuteQuery(ctx context.Context, endpoint, credential, prompt string) (*llm.QueryResult, error) {
	e.log.Info("Will query prompt with %s\n", llm.TextStats(prompt))

	provider, err := e.resolver.Resolve(endpoint)
	if err != nil {
		return nil, err
	}

	req, err := provider.PrepareRequest(ctx, prompt, credential)
	if err != nil {
		return nil, err
	}

	var payload = emptyObject
	var elapsed int64
	if !req.IsInteractive() {
		payload, elapsed, err = e.send(ctx, endpoint, req)
		if err != nil {
			return nil, err
		}
	}

	text, err := provider.ParseResponse(ctx, payload)
	if err != nil {
		e.log.Error("%s\n", err)
		return nil, err
	}

	e.log.Info("Query executed successfully. Response time: %d ms\n", elapsed)

	return &llm.QueryResult{
		Prompt:       prompt,
		Response:     text,
		APIURL:       endpoint,
		ResponseTime: elapsed,
	}, nil
}

func (e *Executor) send(ctx context.Context, endpoint string, req *llm.Request) ([]byte, int64, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, 0, err
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	client := e.newClient()

	e.log.Info("Will query: %s ...\n", endpoint)
	e.log.Debug("%s %s\n%s\n", req.Method, redact(req.URL), req.Body)

	start := time.Now()
	resp, err := client.Do(httpReq)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		e.log.Error("%s\n", err)
		return nil, 0, &llm.NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &llm.APIError{
			StatusCode: resp.StatusCode,
			Status:     statusMessage(resp),
		}
		e.log.Error("%s\n", apiErr)
		return nil, 0, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &llm.NetworkError{Endpoint: endpoint, Err: err}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = emptyObject
	}
	if !gjson.ValidBytes(body) {
		return nil, 0, &llm.MalformedResponseError{Reason: "response body is not JSON"}
	}
	e.log.Debug("response: %s\n", body)

	return body, elapsed, nil
}

// statusMessage returns the reason phrase of the status line, e.g. "Bad Request".
func statusMessage(resp *http.Response) string {
	msg := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return msg
}

// redact hides the query string, which may carry a credential.
func redact(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i] + "?..."
	}
	return u
}
