package envelope

import "errors"

// Reader decodes the protected fields of one record and remembers which of
// them failed validation.
//
// A Reader is meant to be short-lived: create one per record, decode every
// field through it, then call [Reader.Tampered].
type Reader struct {
	codec    *Codec
	tampered []string
}

// NewReader returns a Reader bound to codec.
func (c *Codec) NewReader() *Reader {
	return &Reader{codec: c}
}

// String decodes a NOT NULL field.
func (r *Reader) String(field, stored string) string {
	plaintext, err := r.codec.Open(stored)
	switch {
	case err == nil:
		return plaintext
	case errors.Is(err, ErrEmpty):
		return ""
	default:
		r.tampered = append(r.tampered, field)
		return EditedData
	}
}

// Optional decodes a nullable field.
func (r *Reader) Optional(field string, stored *string) *string {
	if stored == nil || *stored == "" {
		return nil
	}
	plaintext := r.String(field, *stored)
	return &plaintext
}

// Tampered returns the names of the fields that decoded to [EditedData], in
// decode order, or nil when every field was valid.
func (r *Reader) Tampered() []string {
	return r.tampered
}
