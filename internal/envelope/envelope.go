// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope implements the field-level tamper-evident encoding used for
// every protected text column of the application.
//
// A plaintext value is wrapped into an [Envelope]: a start marker, the base64
// encoding of the UTF-8 plaintext and an end marker. The envelope is stored as
// a small JSON object in place of the plaintext. On read the envelope is parsed
// and its markers are validated against the configured [Markers] policy. Any
// failure (bad JSON, missing attribute, marker mismatch, bad base64) collapses
// to the [EditedData] sentinel so that one corrupted field never fails a whole
// record read.
//
// This is obfuscation at rest, not encryption: base64 is reversible without a
// secret. The markers only prove that a value was written through a [Codec]
// configured with the same policy.
package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
)

// EditedData is the sentinel returned by [Codec.Decode] whenever an envelope
// fails validation. It is a return value, not a storable envelope.
const EditedData = "Edited Data"

// Errors returned by [Codec.Open]. [Codec.Decode] maps all of them, except
// ErrEmpty, to [EditedData].
var (
	// ErrEmpty is returned for an empty stored value (the field was never set).
	ErrEmpty = errors.New("empty envelope")
	// ErrMalformed is returned when the stored value is not a JSON object with
	// string attributes.
	ErrMalformed = errors.New("malformed envelope")
	// ErrMissingAttribute is returned when one of the three attributes is
	// absent or empty.
	ErrMissingAttribute = errors.New("envelope attribute is missing")
	// ErrMarkerMismatch is returned when the markers do not satisfy the
	// configured policy.
	ErrMarkerMismatch = errors.New("envelope markers do not match")
	// ErrInvalidPayload is returned when the payload is not valid base64 or
	// does not decode to valid UTF-8.
	ErrInvalidPayload = errors.New("envelope payload is invalid")
)

// Envelope is the unit of storage for a protected field.
//
// The JSON attribute names are part of the persisted format and must not be
// changed: rows written by earlier deployments use exactly these keys.
type Envelope struct {
	// Start is the opaque start marker.
	Start string `json:"$"`
	// Value is the standard base64 encoding of the plaintext bytes.
	Value string `json:"value"`
	// End is the opaque end marker.
	End string `json:"$$"`
}

// Marshal serializes the envelope to its stored text form.
//
// HTML escaping is disabled and the trailing newline added by json.Encoder is
// dropped, so the output is byte-for-byte deterministic for a given envelope.
func (e Envelope) Marshal() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a struct of three strings cannot fail
	_ = enc.Encode(e)

	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Parse reads an envelope from its stored text form and checks that all three
// attributes are present and non-empty. Attribute names must match exactly;
// "VALUE" is not "value". Markers are not validated here.
func Parse(stored string) (Envelope, error) {
	if stored == "" {
		return Envelope{}, ErrEmpty
	}

	var attrs map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stored), &attrs); err != nil {
		return Envelope{}, errors.Join(ErrMalformed, err)
	}

	var e Envelope
	for key, dst := range map[string]*string{"$": &e.Start, "value": &e.Value, "$$": &e.End} {
		raw, ok := attrs[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return Envelope{}, errors.Join(ErrMalformed, err)
		}
	}

	if e.Start == "" || e.Value == "" || e.End == "" {
		return Envelope{}, ErrMissingAttribute
	}

	return e, nil
}
