package roster

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nikmy/meowsched/pkg/errors"
)

const msPerMinute = int64(time.Minute / time.Millisecond)

// Interval is a half-open time range [start, end) in unix milliseconds.
// Back-to-back intervals touching at a boundary do not overlap.
type Interval [2]int64

func (i Interval) Start() int64 { return i[0] }

func (i Interval) End() int64 { return i[1] }

func (i Interval) Minutes() int64 { return (i[1] - i[0]) / msPerMinute }

func (i Interval) Overlaps(o Interval) bool {
	return i[0] < o[1] && o[0] < i[1]
}

// Minutes converts a duration in minutes to milliseconds.
func Minutes(n int64) int64 { return n * msPerMinute }

// Person is the shape shared by both populations. Windows come from
// ingestion and are never modified afterwards; booked time lives on the
// scheduling board, not here.
type Person struct {
	ID      string
	Name    string
	Windows []Interval
}

type Interviewer struct {
	Person
	Skills []string
}

func (i *Interviewer) HasSkill(skill string) bool {
	for _, s := range i.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

type Interviewee struct {
	Person
	Skill    string
	Duration int64 // minutes
}

// InterviewerRecord is one row of the interviewers source, already parsed
// by the ingestion boundary. Timestamps never reach the model as text.
type InterviewerRecord struct {
	ID     string    `validate:"required"`
	Name   string    `validate:"required"`
	Skills string    `validate:"required"`
	Start  time.Time `validate:"required"`
	End    time.Time `validate:"required,gtfield=Start"`
}

type IntervieweeRecord struct {
	ID       string    `validate:"required"`
	Name     string    `validate:"required"`
	Skill    string    `validate:"required"`
	Duration int64     `validate:"required,gt=0"`
	Start    time.Time `validate:"required"`
	End      time.Time `validate:"required,gtfield=Start"`
}

var validate = validator.New()

func NewInterviewer(r InterviewerRecord) (*Interviewer, error) {
	err := validate.Struct(r)
	if err != nil {
		return nil, errors.WrapFailf(err, "validate interviewer %q", r.ID)
	}

	return &Interviewer{
		Person: Person{
			ID:      r.ID,
			Name:    r.Name,
			Windows: []Interval{window(r.Start, r.End)},
		},
		Skills: SplitSkills(r.Skills),
	}, nil
}

func NewInterviewee(r IntervieweeRecord) (*Interviewee, error) {
	err := validate.Struct(r)
	if err != nil {
		return nil, errors.WrapFailf(err, "validate interviewee %q", r.ID)
	}

	return &Interviewee{
		Person: Person{
			ID:      r.ID,
			Name:    r.Name,
			Windows: []Interval{window(r.Start, r.End)},
		},
		Skill:    strings.TrimSpace(r.Skill),
		Duration: r.Duration,
	}, nil
}

// SplitSkills turns a comma-separated tag list into trimmed tags.
// Matching is case-sensitive, so no folding here.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")

	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			skills = append(skills, p)
		}
	}

	return skills
}

func window(start, end time.Time) Interval {
	return Interval{start.UnixMilli(), end.UnixMilli()}
}
