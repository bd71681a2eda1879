package schedule

import (
	"slices"
	"sort"

	"github.com/nikmy/meowsched/internal/roster"
)

// Role separates the two booking populations: ids are only unique within
// their own population, so a bare id cannot key the board.
type Role int

const (
	RoleInterviewer Role = iota
	RoleInterviewee
)

type Key struct {
	Role Role
	ID   string
}

// Board holds every interval booked during the current run. Lists are
// kept sorted and never overlap; entries are appended by the engine only
// and never removed. The board is discarded with the run.
type Board struct {
	booked map[Key][]roster.Interval
}

func NewBoard() *Board {
	return &Board{booked: map[Key][]roster.Interval{}}
}

// Free reports whether slot overlaps none of the key's booked intervals.
// A person with no bookings is always free.
func (b *Board) Free(k Key, slot roster.Interval) bool {
	_, ok := insertionPoint(b.booked[k], slot)
	return ok
}

// Book commits slot for both parties, or for neither if either side is
// already occupied.
func (b *Board) Book(interviewer, interviewee Key, slot roster.Interval) bool {
	iIdx, ok := insertionPoint(b.booked[interviewer], slot)
	if !ok {
		return false
	}

	eIdx, ok := insertionPoint(b.booked[interviewee], slot)
	if !ok {
		return false
	}

	b.booked[interviewer] = slices.Insert(b.booked[interviewer], iIdx, slot)
	b.booked[interviewee] = slices.Insert(b.booked[interviewee], eIdx, slot)
	return true
}

// Booked returns a copy of the key's intervals in chronological order.
func (b *Board) Booked(k Key) []roster.Interval {
	return slices.Clone(b.booked[k])
}

// insertionPoint finds the position where t belongs in the sorted list
// and whether it fits there without overlapping a neighbour.
func insertionPoint(intervals []roster.Interval, t roster.Interval) (int, bool) {
	n := len(intervals)

	if n == 0 {
		return 0, true
	}

	idx := sort.Search(n, func(i int) bool {
		return t[0] <= intervals[i][0]
	})

	if idx == n {
		// all intervals start earlier, check
		// overlap with last one's end
		return idx, t[0] >= intervals[n-1][1]
	}

	if t[1] > intervals[idx][0] {
		return idx, false
	}

	// check overlap with previous one
	if idx > 0 && t[0] < intervals[idx-1][1] {
		return idx, false
	}

	return idx, true
}
