package domain

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"

	"go.trai.ch/zerr"
)

// Request describes one call to the backend API. Path is relative to the
// transport's base URL. Body, when set, is encoded as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Response is the raw result of a successful call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Decode parses the body as an opaque JSON value.
// An empty body decodes to nil.
func (r *Response) Decode() (Payload, error) {
	return DecodePayload(r.Body)
}

// DecodePayload parses data as a single JSON value, keeping numbers as json.Number.
func DecodePayload(data []byte) (Payload, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v Payload
	if err := dec.Decode(&v); err != nil {
		return nil, zerr.With(zerr.Wrap(ErrDecodeFailed, "response is not JSON"), "cause", err.Error())
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, zerr.Wrap(ErrDecodeFailed, "trailing data after JSON value")
	}
	return v, nil
}
