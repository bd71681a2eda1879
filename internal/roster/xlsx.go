package roster

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nikmy/meowsched/pkg/errors"
)

// TimeLayout is the wall-clock format used by the tabular sources and
// reports.
const TimeLayout = "2006-01-02 15:04"

var timeLayouts = [...]string{
	TimeLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func ParseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("unsupported timestamp %q", raw)
}

// LoadInterviewers reads the interviewers workbook. Expected columns:
// ID, Name, Skills, Available_Start, Available_End.
func LoadInterviewers(path string) ([]*Interviewer, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}

	cols, err := columnIndex(rows, "ID", "Name", "Skills", "Available_Start", "Available_End")
	if err != nil {
		return nil, errors.WrapFail(err, "read interviewers header")
	}

	interviewers := make([]*Interviewer, 0, len(rows)-1)
	for n, row := range rows[1:] {
		start, end, err := parseWindow(row, cols["Available_Start"], cols["Available_End"])
		if err != nil {
			return nil, errors.WrapFailf(err, "parse interviewer row %d", n+2)
		}

		interviewer, err := NewInterviewer(InterviewerRecord{
			ID:     cell(row, cols["ID"]),
			Name:   cell(row, cols["Name"]),
			Skills: cell(row, cols["Skills"]),
			Start:  start,
			End:    end,
		})
		if err != nil {
			return nil, errors.WrapFailf(err, "build interviewer from row %d", n+2)
		}

		interviewers = append(interviewers, interviewer)
	}

	return interviewers, nil
}

// LoadInterviewees reads the interviewees workbook. Expected columns:
// ID, Name, Required_Skill, Duration, Available_Start, Available_End.
func LoadInterviewees(path string) ([]*Interviewee, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}

	cols, err := columnIndex(rows, "ID", "Name", "Required_Skill", "Duration", "Available_Start", "Available_End")
	if err != nil {
		return nil, errors.WrapFail(err, "read interviewees header")
	}

	interviewees := make([]*Interviewee, 0, len(rows)-1)
	for n, row := range rows[1:] {
		start, end, err := parseWindow(row, cols["Available_Start"], cols["Available_End"])
		if err != nil {
			return nil, errors.WrapFailf(err, "parse interviewee row %d", n+2)
		}

		duration, err := strconv.ParseInt(strings.TrimSpace(cell(row, cols["Duration"])), 10, 64)
		if err != nil {
			return nil, errors.WrapFailf(err, "parse duration in row %d", n+2)
		}

		interviewee, err := NewInterviewee(IntervieweeRecord{
			ID:       cell(row, cols["ID"]),
			Name:     cell(row, cols["Name"]),
			Skill:    cell(row, cols["Required_Skill"]),
			Duration: duration,
			Start:    start,
			End:      end,
		})
		if err != nil {
			return nil, errors.WrapFailf(err, "build interviewee from row %d", n+2)
		}

		interviewees = append(interviewees, interviewee)
	}

	return interviewees, nil
}

func sheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "open workbook %q", path)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.WrapFailf(err, "read rows of %q", path)
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("workbook %q has no header row", path)
	}

	return rows, nil
}

func columnIndex(rows [][]string, names ...string) (map[string]int, error) {
	header := rows[0]

	cols := make(map[string]int, len(names))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range names {
		if _, ok := cols[name]; !ok {
			return nil, errors.Errorf("missing column %q", name)
		}
	}

	return cols, nil
}

func parseWindow(row []string, startCol, endCol int) (time.Time, time.Time, error) {
	start, err := ParseTime(cell(row, startCol))
	if err != nil {
		return time.Time{}, time.Time{}, errors.WrapFail(err, "parse window start")
	}

	end, err := ParseTime(cell(row, endCol))
	if err != nil {
		return time.Time{}, time.Time{}, errors.WrapFail(err, "parse window end")
	}

	return start, end, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
