package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikmy/meowsched/internal/api"
	"github.com/nikmy/meowsched/internal/report"
	"github.com/nikmy/meowsched/internal/roster"
	"github.com/nikmy/meowsched/internal/schedule"
	"github.com/nikmy/meowsched/pkg/errors"
	"github.com/nikmy/meowsched/pkg/logger"
)

func main() {
	cfg, f, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	engine := schedule.New(cfg.Schedule, log.With("engine"))

	if f.serve {
		serve(cfg, log, engine)
		return
	}

	runOnce(cfg, log, engine)
}

func runOnce(cfg *Config, log logger.Logger, engine *schedule.Engine) {
	interviewers, err := roster.LoadInterviewers(cfg.Input.Interviewers)
	if err != nil {
		log.Panic(errors.WrapFail(err, "load interviewers"))
	}

	interviewees, err := roster.LoadInterviewees(cfg.Input.Interviewees)
	if err != nil {
		log.Panic(errors.WrapFail(err, "load interviewees"))
	}

	log.Infof("loaded %d interviewers and %d interviewees", len(interviewers), len(interviewees))

	res := engine.Schedule(interviewers, interviewees)

	err = report.WriteWorkbook(cfg.Output, res)
	if err != nil {
		log.Panic(errors.WrapFail(err, "write report"))
	}

	log.Infof("scheduled %d interviews, %d unscheduled, report written to %s",
		len(res.Assignments), len(res.Unscheduled), cfg.Output)
}

func serve(cfg *Config, log logger.Logger, engine *schedule.Engine) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	srv := api.NewServer(cfg.API, log, engine)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")
		err := srv.Shutdown(context.Background())
		if err != nil {
			log.Error(errors.WrapFail(err, "shutdown server"))
		}
		stopped <- struct{}{}
	})

	err := srv.Serve(ctx)
	if err != nil {
		log.Error(err)
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
