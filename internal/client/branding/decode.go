package branding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload marks payloads that are neither a bare Record nor a
// one-level {"data": record} envelope.
var ErrMalformedPayload = errors.New("malformed branding payload")

var jsonNull = []byte("null")

// DecodeRecord decodes a CMS branding payload.
//
// Accepted shapes, in order of precedence:
//  1. {"data": { ...record... }} — one-level envelope.
//  2. { ...record... }           — bare record.
//
// Anything else is a decode error, never a silently empty record.
func DecodeRecord(payload []byte) (Record, error) {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &env); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	raw := payload
	if len(env.Data) > 0 && !bytes.Equal(env.Data, jsonNull) {
		raw = env.Data
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return rec, nil
}
