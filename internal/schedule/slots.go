package schedule

import "github.com/nikmy/meowsched/internal/roster"

// DefaultGranularityMinutes is the step between candidate starts. Fifteen
// minutes bounds search cost and matches common interview conventions;
// it is a configuration knob, not a derived value.
const DefaultGranularityMinutes int64 = 15

func overlap(a, b roster.Interval) (roster.Interval, bool) {
	lo := max(a[0], b[0])
	hi := min(a[1], b[1])

	if lo >= hi {
		return roster.Interval{}, false
	}

	return roster.Interval{lo, hi}, true
}

// slotSeq enumerates fixed-length candidate slots inside a window in
// chronological order, stepping by the granularity. The sequence is
// finite; a fresh one restarts from the window start.
type slotSeq struct {
	next   int64
	end    int64
	length int64
	step   int64
}

func slotsWithin(window roster.Interval, length, step int64) *slotSeq {
	return &slotSeq{
		next:   window[0],
		end:    window[1],
		length: length,
		step:   step,
	}
}

func (s *slotSeq) Next() (roster.Interval, bool) {
	if s.next+s.length > s.end {
		return roster.Interval{}, false
	}

	slot := roster.Interval{s.next, s.next + s.length}
	s.next += s.step
	return slot, true
}
