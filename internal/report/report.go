package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nikmy/meowsched/internal/roster"
	"github.com/nikmy/meowsched/internal/schedule"
	"github.com/nikmy/meowsched/pkg/errors"
)

// ScheduledRow is a flat view of one assignment for reporting.
type ScheduledRow struct {
	Interviewee string `json:"interviewee"`
	Interviewer string `json:"interviewer"`
	Skill       string `json:"skill"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Duration    int64  `json:"duration_mins"`
}

type UnscheduledRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Skill    string `json:"required_skill"`
	Duration int64  `json:"duration_mins"`
	Start    string `json:"available_start"`
	End      string `json:"available_end"`
	Reason   string `json:"reason"`
}

// Project flattens the engine's partition into report rows, preserving
// the engine's order.
func Project(res schedule.Result) ([]ScheduledRow, []UnscheduledRow) {
	scheduled := make([]ScheduledRow, 0, len(res.Assignments))
	for _, a := range res.Assignments {
		scheduled = append(scheduled, ScheduledRow{
			Interviewee: a.Interviewee,
			Interviewer: a.Interviewer,
			Skill:       a.Skill,
			Start:       FormatTime(a.Slot.Start()),
			End:         FormatTime(a.Slot.End()),
			Duration:    a.Duration,
		})
	}

	unscheduled := make([]UnscheduledRow, 0, len(res.Unscheduled))
	for _, u := range res.Unscheduled {
		unscheduled = append(unscheduled, UnscheduledRow{
			ID:       u.IntervieweeID,
			Name:     u.Interviewee,
			Skill:    u.Skill,
			Duration: u.Duration,
			Start:    FormatTime(u.Window.Start()),
			End:      FormatTime(u.Window.End()),
			Reason:   string(u.Reason),
		})
	}

	return scheduled, unscheduled
}

func FormatTime(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(roster.TimeLayout)
}

const (
	scheduleSheet    = "Schedule"
	unscheduledSheet = "Unscheduled"
)

var (
	scheduleHeader    = []any{"Interviewee", "Interviewer", "Skill", "Start", "End", "Duration (mins)"}
	unscheduledHeader = []any{"ID", "Name", "Required Skill", "Duration", "Available Start", "Available End", "Reason"}
)

// WriteWorkbook writes the partition as a two-sheet workbook.
func WriteWorkbook(path string, res schedule.Result) error {
	scheduled, unscheduled := Project(res)

	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName(f.GetSheetName(0), scheduleSheet)
	if err != nil {
		return errors.WrapFail(err, "rename schedule sheet")
	}

	_, err = f.NewSheet(unscheduledSheet)
	if err != nil {
		return errors.WrapFail(err, "add unscheduled sheet")
	}

	err = writeRows(f, scheduleSheet, scheduleHeader, len(scheduled), func(i int) []any {
		r := scheduled[i]
		return []any{r.Interviewee, r.Interviewer, r.Skill, r.Start, r.End, r.Duration}
	})
	if err != nil {
		return errors.WrapFail(err, "fill schedule sheet")
	}

	err = writeRows(f, unscheduledSheet, unscheduledHeader, len(unscheduled), func(i int) []any {
		r := unscheduled[i]
		return []any{r.ID, r.Name, r.Skill, r.Duration, r.Start, r.End, r.Reason}
	})
	if err != nil {
		return errors.WrapFail(err, "fill unscheduled sheet")
	}

	return errors.WrapFailf(f.SaveAs(path), "save workbook %q", path)
}

func writeRows(f *excelize.File, sheet string, header []any, n int, row func(i int) []any) error {
	err := f.SetSheetRow(sheet, "A1", &header)
	if err != nil {
		return errors.WrapFail(err, "write header")
	}

	for i := 0; i < n; i++ {
		cells := row(i)
		err = f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells)
		if err != nil {
			return errors.WrapFailf(err, "write row %d", i+2)
		}
	}

	return nil
}
