package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/brandonbloom/cronclearer/internal/capture"
	"github.com/brandonbloom/cronclearer/internal/config"
	"github.com/brandonbloom/cronclearer/internal/outcome"
	"github.com/brandonbloom/cronclearer/internal/report"
	"github.com/brandonbloom/cronclearer/internal/runner"
	"github.com/brandonbloom/cronclearer/internal/tracefilter"
)

func (a *app) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.opts.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.env.Stderr, &slog.HandlerOptions{Level: level}))
}

func (a *app) loadConfig() (config.Config, error) {
	path := config.Path(a.opts.configPath, a.env.LookupEnv)
	if path == "" {
		return config.Default(), nil
	}
	if a.opts.configPath != "" {
		if _, err := os.Stat(path); err != nil {
			return config.Config{}, fmt.Errorf("config: %w", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// policy layers the flags over the config file. Flags only ever switch a
// check on or off relative to the defaults; they never restore them.
func (a *app) policy(cfg config.Config) outcome.Policy {
	p := outcome.DefaultPolicy()
	if cfg.IgnoreText || a.opts.ignoreText {
		p.FailOnDiagnosticText = false
	}
	if cfg.CheckStdout || a.opts.checkStdout {
		p.FailOnStdoutText = true
	}
	return p
}

// run executes argv and reports on it if it failed. The returned code is
// the command's exit status.
func (a *app) run(ctx context.Context, argv []string) (int, error) {
	log := a.logger()

	cfg, err := a.loadConfig()
	if err != nil {
		return ExitFailure, err
	}
	policy := a.policy(cfg)
	inv := runner.Invocation{Program: argv[0], Args: argv[1:]}

	area, err := capture.New(cfg.TempDir)
	if err != nil {
		return ExitFailure, err
	}
	defer func() {
		if err := area.Close(); err != nil {
			log.Warn("capture cleanup failed", "dir", area.Dir, "err", err)
		}
	}()
	log.Debug("capture area ready", "dir", area.Dir)

	r := &runner.Runner{MaxCapture: cfg.MaxCaptureBytes}
	res, err := stage(ctx, log, "execute", func() (*runner.Result, error) {
		return r.Run(inv, area)
	})
	if err != nil {
		return ExitFailure, err
	}
	log = log.With("run_id", res.RunID)
	log.Debug("command finished",
		"program", inv.Program,
		"exit_code", res.ExitCode,
		"exited", res.Exited,
		"signal", res.Signal,
		"truncated", res.Truncated)

	prefix := tracefilter.Prefix(a.env.LookupEnv, cfg.TracePrefix)
	clean, err := stage(ctx, log, "filter", func() (string, error) {
		clean := tracefilter.Filter(res.Trace, prefix)
		return clean, capture.WriteText(area.Diagnostic, clean)
	})
	if err != nil {
		return ExitFailure, err
	}

	verdict := outcome.Classify(outcome.Input{
		ExitCode:   res.ExitCode,
		Exited:     res.Exited,
		Diagnostic: clean,
		Stdout:     res.Stdout,
	}, policy)
	log.Debug("classified",
		"verdict", verdict.String(),
		"fail_on_stderr", policy.FailOnDiagnosticText,
		"fail_on_stdout", policy.FailOnStdoutText)

	if verdict == outcome.Fail {
		err := stageErr(ctx, log, "render", func() error {
			return report.Render(a.env.Stdout, report.Report{
				Program:    inv.Program,
				Args:       inv.Args,
				ExitCode:   res.ExitCode,
				Diagnostic: clean,
				Stdout:     res.Stdout,
				Trace:      res.Trace,
			})
		})
		if err != nil {
			return res.ExitCode, fmt.Errorf("write report: %w", err)
		}
	}

	return res.ExitCode, nil
}
