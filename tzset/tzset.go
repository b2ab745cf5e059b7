package tzset

import (
	"github.com/k-yomo/analog-world-clock/pkg/tzdb"
	"go.uber.org/zap"
)

// Set is the outcome of resolving a desired list of identifiers.
type Set struct {
	// Zones holds at most Target valid identifiers in display order.
	Zones []string
	// Dropped lists desired identifiers missing from the database.
	Dropped []string
	// Backfilled lists backups appended to make up for dropped entries.
	Backfilled []string
	Target     int
}

// Shortfall is how many identifiers are missing from a full set.
// A positive value means the grid is shorter than requested; it is not an error.
func (s *Set) Shortfall() int {
	if d := s.Target - len(s.Zones); d > 0 {
		return d
	}
	return 0
}

// Resolve returns up to n identifiers known to db.
// Desired entries keep their order; invalid ones are logged and dropped.
// Backups fill the remaining slots, skipping duplicates and unknown identifiers.
// Valid entries beyond n are truncated.
func Resolve(db tzdb.Database, desired, backups []string, n int, logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	set := &Set{Target: n}
	if n <= 0 {
		return set
	}

	seen := map[string]bool{}
	var valid []string
	for _, tz := range desired {
		if seen[tz] {
			logger.Warn("duplicate timezone, skipping", zap.String("timezone", tz))
			continue
		}
		if !db.Contains(tz) {
			logger.Warn("invalid timezone, skipping", zap.String("timezone", tz))
			set.Dropped = append(set.Dropped, tz)
			continue
		}
		seen[tz] = true
		valid = append(valid, tz)
	}

	for _, tz := range backups {
		if len(valid) >= n {
			break
		}
		if seen[tz] || !db.Contains(tz) {
			continue
		}
		seen[tz] = true
		valid = append(valid, tz)
		set.Backfilled = append(set.Backfilled, tz)
	}

	if len(valid) > n {
		valid = valid[:n]
	}
	set.Zones = valid

	if shortfall := set.Shortfall(); shortfall > 0 {
		logger.Warn("insufficient valid timezones",
			zap.Int("want", n),
			zap.Int("got", len(set.Zones)),
		)
	}
	logger.Info("resolved timezones",
		zap.Int("count", len(set.Zones)),
		zap.Strings("dropped", set.Dropped),
		zap.Strings("backfilled", set.Backfilled),
	)
	return set
}
