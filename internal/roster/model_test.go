package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSplitSkills(t *testing.T) {
	type testcase struct {
		name string
		raw  string
		want []string
	}

	tests := [...]testcase{
		{
			name: "single",
			raw:  "SQL",
			want: []string{"SQL"},
		},
		{
			name: "trims around commas",
			raw:  " SQL , Go ,Java",
			want: []string{"SQL", "Go", "Java"},
		},
		{
			name: "drops empty tags",
			raw:  "SQL,, ,Go",
			want: []string{"SQL", "Go"},
		},
		{
			name: "keeps case",
			raw:  "sql,SQL",
			want: []string{"sql", "SQL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitSkills(tt.raw))
		})
	}
}

func TestNewInterviewer(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("ok", func(t *testing.T) {
		got, err := NewInterviewer(InterviewerRecord{
			ID:     "I1",
			Name:   "Ivy",
			Skills: "SQL, Go",
			Start:  start,
			End:    end,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"SQL", "Go"}, got.Skills)
		require.Equal(t, []Interval{{start.UnixMilli(), end.UnixMilli()}}, got.Windows)
		require.True(t, got.HasSkill("Go"))
		require.False(t, got.HasSkill("go"))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := NewInterviewer(InterviewerRecord{
			Name:   "Ivy",
			Skills: "SQL",
			Start:  start,
			End:    end,
		})
		require.Error(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewInterviewer(InterviewerRecord{
			ID:     "I1",
			Name:   "Ivy",
			Skills: "SQL",
			Start:  end,
			End:    start,
		})
		require.Error(t, err)
	})
}

func TestNewInterviewee(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("ok", func(t *testing.T) {
		got, err := NewInterviewee(IntervieweeRecord{
			ID:       "E1",
			Name:     "Eve",
			Skill:    " SQL ",
			Duration: 30,
			Start:    start,
			End:      end,
		})
		require.NoError(t, err)
		require.Equal(t, "SQL", got.Skill, "required skill is trimmed")
		require.EqualValues(t, 30, got.Duration)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		for _, d := range []int64{0, -30} {
			_, err := NewInterviewee(IntervieweeRecord{
				ID:       "E1",
				Name:     "Eve",
				Skill:    "SQL",
				Duration: d,
				Start:    start,
				End:      end,
			})
			require.Error(t, err)
		}
	})

	t.Run("degenerate window", func(t *testing.T) {
		_, err := NewInterviewee(IntervieweeRecord{
			ID:       "E1",
			Name:     "Eve",
			Skill:    "SQL",
			Duration: 30,
			Start:    start,
			End:      start,
		})
		require.Error(t, err)
	})
}

func TestInterval(t *testing.T) {
	i := Interval{0, Minutes(45)}
	require.EqualValues(t, 45, i.Minutes())

	require.True(t, i.Overlaps(Interval{Minutes(44), Minutes(60)}))
	require.False(t, i.Overlaps(Interval{Minutes(45), Minutes(60)}), "half-open end")
	require.False(t, Interval{Minutes(60), Minutes(90)}.Overlaps(i))
}

func TestParseTime(t *testing.T) {
	want := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	for _, raw := range []string{
		"2025-03-01 09:30",
		" 2025-03-01 09:30 ",
		"2025-03-01 09:30:00",
		"2025-03-01T09:30:00Z",
	} {
		got, err := ParseTime(raw)
		require.NoError(t, err, raw)
		require.True(t, want.Equal(got), raw)
	}

	_, err := ParseTime("01.03.2025 09:30")
	require.Error(t, err)
}
