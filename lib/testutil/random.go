package testutil

import (
	"strings"
	"testing"

	"github.com/mazen160/go-random"
)

// RandomUsername returns a plausible lowercase player name, distinct
// per call.
func RandomUsername(t testing.TB) string {
	name, err := random.String(12)
	if err != nil {
		t.Fatal(err)
	}
	return strings.ToLower(name)
}
