package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/meowsched/internal/report"
	"github.com/nikmy/meowsched/internal/roster"
	"github.com/nikmy/meowsched/pkg/errors"
	"github.com/nikmy/meowsched/pkg/logger"
)

func NewServer(cfg Config, log logger.Logger, sched Scheduler) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		DisableStartupMessage: true,
		RequestMethods:        []string{fiber.MethodGet, fiber.MethodPost},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		sched: sched,
		http:  fiber.New(fiberCfg),
		addr:  cfg.HTTP.Addr,
		log:   serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	sched Scheduler
	http  *fiber.App
	addr  string
	log   logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Post("/schedule", s.handleSchedule)
}

type interviewerPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Skills         string `json:"skills"`
	AvailableStart string `json:"available_start"`
	AvailableEnd   string `json:"available_end"`
}

type intervieweePayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RequiredSkill  string `json:"required_skill"`
	Duration       int64  `json:"duration_mins"`
	AvailableStart string `json:"available_start"`
	AvailableEnd   string `json:"available_end"`
}

type scheduleRequest struct {
	Interviewers []interviewerPayload `json:"interviewers"`
	Interviewees []intervieweePayload `json:"interviewees"`
}

type scheduleResponse struct {
	Scheduled   []report.ScheduledRow   `json:"scheduled"`
	Unscheduled []report.UnscheduledRow `json:"unscheduled"`
}

func (s *server) handleSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal schedule payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	interviewers, interviewees, err := buildRosters(req)
	if err != nil {
		s.log.Warn(err)
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	scheduled, unscheduled := report.Project(s.sched.Schedule(interviewers, interviewees))

	return c.Status(http.StatusOK).JSON(scheduleResponse{
		Scheduled:   scheduled,
		Unscheduled: unscheduled,
	})
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

func buildRosters(req scheduleRequest) ([]*roster.Interviewer, []*roster.Interviewee, error) {
	interviewers := make([]*roster.Interviewer, 0, len(req.Interviewers))
	for _, p := range req.Interviewers {
		start, end, err := parseWindow(p.AvailableStart, p.AvailableEnd)
		if err != nil {
			return nil, nil, errors.WrapFailf(err, "parse window of interviewer %q", p.ID)
		}

		interviewer, err := roster.NewInterviewer(roster.InterviewerRecord{
			ID:     p.ID,
			Name:   p.Name,
			Skills: p.Skills,
			Start:  start,
			End:    end,
		})
		if err != nil {
			return nil, nil, err
		}

		interviewers = append(interviewers, interviewer)
	}

	interviewees := make([]*roster.Interviewee, 0, len(req.Interviewees))
	for _, p := range req.Interviewees {
		start, end, err := parseWindow(p.AvailableStart, p.AvailableEnd)
		if err != nil {
			return nil, nil, errors.WrapFailf(err, "parse window of interviewee %q", p.ID)
		}

		interviewee, err := roster.NewInterviewee(roster.IntervieweeRecord{
			ID:       p.ID,
			Name:     p.Name,
			Skill:    p.RequiredSkill,
			Duration: p.Duration,
			Start:    start,
			End:      end,
		})
		if err != nil {
			return nil, nil, err
		}

		interviewees = append(interviewees, interviewee)
	}

	return interviewers, interviewees, nil
}

func parseWindow(rawStart, rawEnd string) (start, end time.Time, err error) {
	start, err = roster.ParseTime(rawStart)
	if err != nil {
		return start, end, err
	}

	end, err = roster.ParseTime(rawEnd)
	return start, end, err
}
