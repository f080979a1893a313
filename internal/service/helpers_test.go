package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/envelope"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestCodec() *envelope.Codec {
	return envelope.NewCodec(envelope.FixedMarkers{Start: "$:test-start", End: "$$:test-end"})
}

func fixedNow() time.Time { return testNow }

// sequenceIDs issues "id-1", "id-2", ...
type sequenceIDs struct{ n int }

func (g *sequenceIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func strPtr(s string) *string { return &s }
