// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/base64"
	"errors"
	"unicode/utf8"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
)

// Codec wraps plaintext into envelopes and unwraps them back.
//
// A Codec holds no mutable state after construction and is safe for
// concurrent use.
type Codec struct {
	markers Markers
}

// NewCodec constructs a Codec using the given marker policy.
// A nil policy falls back to [RandomMarkers].
func NewCodec(markers Markers) *Codec {
	if markers == nil {
		markers = RandomMarkers{}
	}
	return &Codec{markers: markers}
}

// NewCodecFromConfig picks the marker policy named in cfg. Any policy other
// than "random" uses the configured fixed marker pair.
func NewCodecFromConfig(cfg config.Envelope) *Codec {
	if cfg.Policy == config.PolicyRandom {
		return NewCodec(RandomMarkers{})
	}
	return NewCodec(FixedMarkers{Start: cfg.StartMarker, End: cfg.EndMarker})
}

// Deterministic reports whether equal plaintexts seal to equal strings,
// which lets callers look sealed columns up by equality.
func (c *Codec) Deterministic() bool {
	_, ok := c.markers.(FixedMarkers)
	return ok
}

// Encode wraps plaintext into an [Envelope]. It never fails.
//
// An empty plaintext produces an envelope with an empty payload, which does not
// pass validation on read; callers store "no value" as NULL instead (see
// [Codec.SealOptional]).
func (c *Codec) Encode(plaintext string) Envelope {
	start, end := c.markers.Issue()
	return Envelope{
		Start: start,
		Value: base64.StdEncoding.EncodeToString([]byte(plaintext)),
		End:   end,
	}
}

// Seal encodes plaintext and returns the serialized envelope ready to be
// written to a text column.
func (c *Codec) Seal(plaintext string) string {
	return c.Encode(plaintext).Marshal()
}

// SealOptional seals an optional value. A nil or empty plaintext yields nil,
// which is stored as NULL.
func (c *Codec) SealOptional(plaintext *string) *string {
	if plaintext == nil || *plaintext == "" {
		return nil
	}
	sealed := c.Seal(*plaintext)
	return &sealed
}

// Open parses and validates a serialized envelope and returns the plaintext.
// It reports why validation failed with one of the package errors.
func (c *Codec) Open(stored string) (string, error) {
	e, err := Parse(stored)
	if err != nil {
		return "", err
	}

	if !c.markers.Valid(e.Start, e.End) {
		return "", ErrMarkerMismatch
	}

	raw, err := base64.StdEncoding.DecodeString(e.Value)
	if err != nil {
		return "", errors.Join(ErrInvalidPayload, err)
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidPayload
	}

	return string(raw), nil
}

// Decode unwraps a stored value.
//
//   - nil or empty input returns nil (the field was never set);
//   - any validation failure returns a pointer to [EditedData];
//   - otherwise the plaintext is returned.
//
// Decode never panics and never returns an error.
func (c *Codec) Decode(stored *string) *string {
	if stored == nil || *stored == "" {
		return nil
	}
	plaintext := c.DecodeString(*stored)
	return &plaintext
}

// DecodeString is [Codec.Decode] for NOT NULL columns: an empty input returns
// an empty string instead of nil.
func (c *Codec) DecodeString(stored string) string {
	plaintext, err := c.Open(stored)
	switch {
	case err == nil:
		return plaintext
	case errors.Is(err, ErrEmpty):
		return ""
	default:
		return EditedData
	}
}
