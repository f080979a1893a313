package envelope

import (
	"crypto/rand"
	"encoding/hex"
)

// Markers is the marker policy of a [Codec]: it issues the marker pair for a
// new envelope and decides whether a parsed pair is acceptable.
type Markers interface {
	// Issue returns the start and end markers for a new envelope.
	Issue() (start, end string)
	// Valid reports whether a stored marker pair passes validation.
	Valid(start, end string) bool
}

// FixedMarkers is the process-wide marker pair policy. Every envelope carries
// the same pair and only that pair is accepted on read, so an envelope built
// by anything other than a codec sharing the pair is detected.
type FixedMarkers struct {
	Start string
	End   string
}

// Issue implements [Markers].
func (m FixedMarkers) Issue() (string, string) {
	return m.Start, m.End
}

// Valid implements [Markers].
func (m FixedMarkers) Valid(start, end string) bool {
	return start == m.Start && end == m.End
}

// RandomMarkers issues a fresh random marker per envelope and accepts any
// envelope whose start and end markers are equal. It only detects corruption
// of a single envelope, not values written by a foreign encoder.
type RandomMarkers struct{}

// Issue implements [Markers]. The marker has the form "$2a$<16 hex digits>$".
func (RandomMarkers) Issue() (string, string) {
	b := make([]byte, 8)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(b)
	marker := "$2a$" + hex.EncodeToString(b) + "$"

	return marker, marker
}

// Valid implements [Markers].
func (RandomMarkers) Valid(start, end string) bool {
	return start != "" && start == end
}
