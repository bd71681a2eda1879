package api

//go:generate mockgen -source interfaces.go -destination mocks_test.go -package api

import (
	"context"

	"github.com/nikmy/meowsched/internal/roster"
	"github.com/nikmy/meowsched/internal/schedule"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Scheduler produces the assignment partition for a pair of rosters.
type Scheduler interface {
	Schedule(interviewers []*roster.Interviewer, interviewees []*roster.Interviewee) schedule.Result
}
