package stats

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/stats"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/timeutil"
)

type Stats struct {
	Journal catalog.Journal

	// Window bounds the weekday pattern, e.g. "8w" or "30d". Empty uses the
	// default eight weeks.
	Window string

	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report stats, no persistence")
	}
	cat, err := catalog.For(n.Journal)
	if err != nil {
		return err
	}

	weeks := stats.DefaultPatternWeeks
	if n.Window != "" {
		dur, _, err := timeutil.ParseWindow(n.Window)
		if err != nil {
			return err
		}
		weeks = int(dur / (7 * 24 * time.Hour))
		if weeks < 1 {
			weeks = 1
		}
	}

	s := store.NewStore(ctx, cat, n.Persistence)
	records := s.All()

	now := time.Now()
	snapshot := stats.Compute(cat, records, now)
	snapshot.WeeklyPattern = stats.WeeklyPattern(records, now, weeks)

	pp := printers.PrettyPrint{}
	pp.Stats(n.Journal, snapshot)
	return nil
}
