package clock

import (
	"testing"
	"time"
)

// MockTime pins Now to tm until the test finishes.
func MockTime(t *testing.T, tm time.Time) {
	t.Helper()
	original := Now
	Now = func() time.Time {
		return tm
	}
	t.Cleanup(func() {
		Now = original
	})
}
