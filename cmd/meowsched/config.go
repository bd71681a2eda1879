package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/meowsched/internal/api"
	"github.com/nikmy/meowsched/internal/schedule"
	"github.com/nikmy/meowsched/pkg/environment"
	"github.com/nikmy/meowsched/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"environment"`
	Schedule    schedule.Config `yaml:"schedule"`
	API         api.Config      `yaml:"api"`

	Input struct {
		Interviewers string `yaml:"interviewers"`
		Interviewees string `yaml:"interviewees"`
	} `yaml:"input"`

	Output string `yaml:"output"`
}

type flags struct {
	env          string
	serve        bool
	interviewers string
	interviewees string
	output       string
}

func loadConfig() (*Config, flags, error) {
	var f flags
	flag.StringVar(&f.env, "env", "", "environment (dev, prod)")
	flag.BoolVar(&f.serve, "serve", false, "run the http api instead of a one-shot scheduling pass")
	flag.StringVar(&f.interviewers, "interviewers", "", "interviewers workbook path")
	flag.StringVar(&f.interviewees, "interviewees", "", "interviewees workbook path")
	flag.StringVar(&f.output, "out", "", "result workbook path")
	flag.Parse()

	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, f, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, f, errors.WrapFail(err, "read \"config.yaml\"")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, f, errors.WrapFail(err, "parse yaml")
	}

	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}
	if f.interviewers != "" {
		cfg.Input.Interviewers = f.interviewers
	}
	if f.interviewees != "" {
		cfg.Input.Interviewees = f.interviewees
	}
	if f.output != "" {
		cfg.Output = f.output
	}

	return &cfg, f, nil
}
