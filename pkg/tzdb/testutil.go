package tzdb

import (
	"time"

	"github.com/pkg/errors"
)

// Fake is a Database with a fixed set of identifiers, each mapped to a
// constant UTC offset in seconds.
type Fake struct {
	offsets map[string]int
	// Broken identifiers are reported by Contains but fail to resolve.
	broken map[string]bool
}

func NewFake(offsets map[string]int) *Fake {
	return &Fake{offsets: offsets, broken: map[string]bool{}}
}

// NewFakeNames returns a Fake whose identifiers all sit at UTC.
func NewFakeNames(names ...string) *Fake {
	offsets := make(map[string]int, len(names))
	for _, name := range names {
		offsets[name] = 0
	}
	return NewFake(offsets)
}

// Break makes Location fail for name while Contains still reports it.
func (f *Fake) Break(name string) {
	f.broken[name] = true
}

func (f *Fake) Contains(name string) bool {
	_, ok := f.offsets[name]
	return ok
}

func (f *Fake) Location(name string) (*time.Location, error) {
	offset, ok := f.offsets[name]
	if !ok || f.broken[name] {
		return nil, errors.Errorf("unknown time zone %q", name)
	}
	return time.FixedZone(name, offset), nil
}
