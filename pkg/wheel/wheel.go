// Package wheel picks a random record from a candidate list, wheel-of-fortune
// style, avoiding an immediate repeat when it can.
package wheel

import (
	"math"
	"math/rand"
	"time"

	"tableflip.dev/daybook/pkg/record"
)

// EmptyCandidatesError reports a pick over an empty list. Callers are
// expected to check the candidate count first; the error exists so a missed
// check stays a handled failure instead of a panic.
type EmptyCandidatesError struct{}

func (e *EmptyCandidatesError) Error() string {
	return "no candidates to pick from"
}

// DefaultMaxAttempts bounds the redraws used to dodge an immediate repeat.
const DefaultMaxAttempts = 10

// Picker draws records using its own random source so tests can seed it.
type Picker struct {
	rng *rand.Rand
}

// New returns a Picker over the given source. A nil source gets a
// time-seeded one.
func New(src rand.Source) *Picker {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Picker{rng: rand.New(src)}
}

// Pick draws uniformly from candidates. If the draw matches previous (by id)
// and there is more than one candidate, it redraws up to maxAttempts times
// before accepting the repeat; the bound guarantees termination, so with a
// short list a repeat can still come back. maxAttempts <= 0 uses the default.
func (p *Picker) Pick(candidates []*record.Record, previous *record.Record, maxAttempts int) (*record.Record, error) {
	if len(candidates) == 0 {
		return nil, &EmptyCandidatesError{}
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	pick := candidates[p.rng.Intn(len(candidates))]
	if previous == nil || len(candidates) == 1 {
		return pick, nil
	}
	for attempt := 0; attempt < maxAttempts && pick.ID == previous.ID; attempt++ {
		pick = candidates[p.rng.Intn(len(candidates))]
	}
	return pick, nil
}

// Spin rotates the wheel to a random angle and returns the chosen candidate
// along with the pointer angle in degrees, for hosts that animate the wheel.
func (p *Picker) Spin(candidates []*record.Record, previous *record.Record) (*record.Record, float64, error) {
	pick, err := p.Pick(candidates, previous, DefaultMaxAttempts)
	if err != nil {
		return nil, 0, err
	}

	// Center the pointer inside the chosen segment.
	segment := 0
	for i, c := range candidates {
		if c.ID == pick.ID {
			segment = i
			break
		}
	}
	width := 360.0 / float64(len(candidates))
	angle := width*float64(segment) + width/2
	return pick, angle, nil
}

// SegmentIndex maps a pointer angle in degrees to a segment index. The
// result is clamped to [0, segments-1] so a pointer at exactly 360° lands on
// the last segment instead of off the wheel.
func SegmentIndex(pointerAngle float64, segments int) int {
	if segments <= 0 {
		return 0
	}
	idx := int(math.Floor(pointerAngle / (360.0 / float64(segments))))
	if idx < 0 {
		return 0
	}
	if idx >= segments {
		return segments - 1
	}
	return idx
}
