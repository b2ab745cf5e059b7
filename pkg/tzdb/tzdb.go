package tzdb

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Database answers whether a timezone identifier is known and resolves it
// to a location carrying its offset and daylight-saving rules.
type Database interface {
	Contains(name string) bool
	Location(name string) (*time.Location, error)
}

const preloadConcurrency = 8

// System is a Database backed by the host zoneinfo.
// Loaded locations are cached for the lifetime of the process.
type System struct {
	mu        sync.Mutex
	locations map[string]*time.Location
}

func NewSystem() *System {
	return &System{locations: map[string]*time.Location{}}
}

func (s *System) Contains(name string) bool {
	_, err := s.Location(name)
	return err == nil
}

func (s *System) Location(name string) (*time.Location, error) {
	// time.LoadLocation maps "" to UTC and "Local" to the host zone;
	// neither is a database identifier.
	if name == "" || name == "Local" || strings.TrimSpace(name) != name {
		return nil, errors.Errorf("unknown time zone %q", name)
	}

	s.mu.Lock()
	loc, ok := s.locations[name]
	s.mu.Unlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load location %q", name)
	}

	s.mu.Lock()
	s.locations[name] = loc
	s.mu.Unlock()
	return loc, nil
}

// Preload resolves names concurrently so the first tick does not pay for
// reading zoneinfo files. Unknown names are skipped; membership checks report them.
func (s *System) Preload(ctx context.Context, names []string) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(preloadConcurrency)
	for _, name := range names {
		name := name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, _ = s.Location(name)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "preload locations")
	}
	return nil
}

// Loaded returns the number of cached locations.
func (s *System) Loaded() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locations)
}
