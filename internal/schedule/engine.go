package schedule

import (
	"github.com/google/uuid"

	"github.com/nikmy/meowsched/internal/roster"
	"github.com/nikmy/meowsched/pkg/logger"
)

// Reason explains why an interviewee could not be placed. Not an error:
// "no match" is a normal terminal outcome.
type Reason string

const (
	ReasonNoInterviewer Reason = "No matching interviewer"
	ReasonNoSlots       Reason = "No available slots"
)

// Assignment is a committed interview. Immutable once emitted.
type Assignment struct {
	ID string

	IntervieweeID string
	Interviewee   string
	InterviewerID string
	Interviewer   string

	Skill    string
	Slot     roster.Interval
	Duration int64 // minutes
}

// Unscheduled is an interviewee the engine could not place, with the
// reason and the window it asked for.
type Unscheduled struct {
	IntervieweeID string
	Interviewee   string

	Skill    string
	Duration int64
	Window   roster.Interval
	Reason   Reason
}

// Result is the final partition: every interviewee lands in exactly one
// of the two lists.
type Result struct {
	Assignments []Assignment
	Unscheduled []Unscheduled
}

type Config struct {
	GranularityMinutes int64 `yaml:"granularity_minutes"`
}

func (c Config) granularity() int64 {
	if c.GranularityMinutes > 0 {
		return c.GranularityMinutes
	}
	return DefaultGranularityMinutes
}

type Engine struct {
	step int64 // milliseconds between candidate starts
	log  logger.Logger
}

func New(cfg Config, log logger.Logger) *Engine {
	return &Engine{
		step: roster.Minutes(cfg.granularity()),
		log:  log,
	}
}

// Schedule runs a single first-fit pass over interviewees in input order.
// Input order is scheduling priority: an interviewee placed earlier may
// foreclose slots examined for a later one, and a committed booking is
// never revisited. No backtracking, no optimality.
func (e *Engine) Schedule(interviewers []*roster.Interviewer, interviewees []*roster.Interviewee) Result {
	board := NewBoard()

	res := Result{
		Assignments: make([]Assignment, 0, len(interviewees)),
		Unscheduled: make([]Unscheduled, 0),
	}

	for _, ee := range interviewees {
		if !fitsOwnWindow(ee) {
			res.Unscheduled = append(res.Unscheduled, unscheduled(ee, ReasonNoSlots))
			continue
		}

		pool := Eligible(interviewers, ee.Skill)
		if len(pool) == 0 {
			e.log.Debugf("no interviewer with skill %q for %s", ee.Skill, ee.ID)
			res.Unscheduled = append(res.Unscheduled, unscheduled(ee, ReasonNoInterviewer))
			continue
		}

		m, ok := e.findSlot(board, ee, pool)
		if !ok {
			res.Unscheduled = append(res.Unscheduled, unscheduled(ee, ReasonNoSlots))
			continue
		}

		e.log.Debugf("scheduled %s with %s at %d", ee.ID, m.interviewer.ID, m.slot.Start())
		res.Assignments = append(res.Assignments, Assignment{
			ID:            uuid.NewString(),
			IntervieweeID: ee.ID,
			Interviewee:   ee.Name,
			InterviewerID: m.interviewer.ID,
			Interviewer:   m.interviewer.Name,
			Skill:         ee.Skill,
			Slot:          m.slot,
			Duration:      ee.Duration,
		})
	}

	return res
}

// Eligible filters interviewers holding skill, preserving input order.
// Order is the greedy tie-break: first eligible, first tried. An empty
// result is a valid outcome.
func Eligible(pool []*roster.Interviewer, skill string) []*roster.Interviewer {
	eligible := make([]*roster.Interviewer, 0, len(pool))
	for _, i := range pool {
		if i.HasSkill(skill) {
			eligible = append(eligible, i)
		}
	}
	return eligible
}

type match struct {
	interviewer *roster.Interviewer
	slot        roster.Interval
}

// findSlot searches interviewers in pool order, window pairs in order and
// candidate starts in chronological order, and commits the first slot
// both parties are free for. Booking happens here so that a successful
// match and its commit are one step.
func (e *Engine) findSlot(board *Board, ee *roster.Interviewee, pool []*roster.Interviewer) (match, bool) {
	length := roster.Minutes(ee.Duration)
	eeKey := Key{Role: RoleInterviewee, ID: ee.ID}

	for _, er := range pool {
		erKey := Key{Role: RoleInterviewer, ID: er.ID}

		for _, ew := range ee.Windows {
			for _, iw := range er.Windows {
				win, ok := overlap(ew, iw)
				if !ok {
					continue
				}

				seq := slotsWithin(win, length, e.step)
				for {
					slot, ok := seq.Next()
					if !ok {
						break
					}

					if !board.Free(eeKey, slot) || !board.Free(erKey, slot) {
						continue
					}

					if board.Book(erKey, eeKey, slot) {
						return match{interviewer: er, slot: slot}, true
					}
				}
			}
		}
	}

	return match{}, false
}

// fitsOwnWindow reports whether any of the interviewee's windows is long
// enough for the requested duration. If none is, no search is attempted.
func fitsOwnWindow(ee *roster.Interviewee) bool {
	for _, w := range ee.Windows {
		if w.Minutes() >= ee.Duration {
			return true
		}
	}
	return false
}

func unscheduled(ee *roster.Interviewee, reason Reason) Unscheduled {
	u := Unscheduled{
		IntervieweeID: ee.ID,
		Interviewee:   ee.Name,
		Skill:         ee.Skill,
		Duration:      ee.Duration,
		Reason:        reason,
	}

	if len(ee.Windows) > 0 {
		u.Window = ee.Windows[0]
	}

	return u
}
