package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	maxMemory = 1 << 20 // multipart parts kept in memory
	maxBody   = 64 << 10
)

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind decodes the request body into v by Content-Type: JSON bodies are
// decoded directly, form and multipart bodies are mapped onto v's `json`
// tags. Bodies over 64 KB are rejected.
func (req *Request) Bind(v any) error {
	ct := req.contentType()

	switch {
	case strings.Contains(ct, "application/json"):
		body, err := req.readBody()
		if err != nil {
			return err
		}
		return json.Unmarshal(body, v)

	case strings.Contains(ct, "multipart/form-data"):
		req.limitBody()
		if err := req.raw.ParseMultipartForm(maxMemory); err != nil {
			return fmt.Errorf("multipart body: %w", err)
		}
		return bindValues(req.raw.MultipartForm.Value, v)

	default:
		req.limitBody()
		if err := req.raw.ParseForm(); err != nil {
			return fmt.Errorf("form body: %w", err)
		}
		return bindValues(req.raw.PostForm, v)
	}
}

func (req *Request) limitBody() {
	if req.raw.Body != nil {
		req.raw.Body = http.MaxBytesReader(nil, req.raw.Body, maxBody)
	}
}

func (req *Request) readBody() ([]byte, error) {
	if req.raw.Body == nil {
		return nil, errors.New("empty request body")
	}
	defer req.raw.Body.Close()

	body, err := io.ReadAll(io.LimitReader(req.raw.Body, maxBody+1))
	switch {
	case err != nil:
		return nil, err
	case len(body) == 0:
		return nil, errors.New("empty request body")
	case len(body) > maxBody:
		return nil, errors.New("request body too large")
	}
	return body, nil
}

// bindValues maps form values onto v through a JSON round-trip so the same
// `json` tags serve both encodings. Repeated keys become arrays.
func bindValues(values map[string][]string, v any) error {
	m := make(map[string]any, len(values))
	for k, vals := range values {
		if len(vals) == 1 {
			m[k] = vals[0]
		} else {
			m[k] = vals
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// ── Request data ─────────────────────────────────────────────────────────────

// RouteParam returns a URL route parameter (chi).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// IP returns the client address without its port.
// RemoteAddr only carries a forwarded address when the router trusts a proxy.
func (req *Request) IP() string {
	host, _, err := net.SplitHostPort(req.raw.RemoteAddr)
	if err != nil {
		return req.raw.RemoteAddr
	}
	return host
}

// IsJSON returns true when the client sent or expects JSON.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.raw.Header.Get("Accept"), "application/json") ||
		strings.Contains(req.contentType(), "application/json")
}

func (req *Request) contentType() string {
	return req.raw.Header.Get("Content-Type")
}
