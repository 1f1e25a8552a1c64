package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brandonbloom/cronclearer/internal/version"
	"github.com/spf13/cobra"
)

const programName = "cronclearer"

// Exit codes used when the wrapped command never ran.
const (
	ExitUsage   = 1
	ExitFailure = 1
)

// Env is everything a run takes from its surroundings.
type Env struct {
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv func(string) (string, bool)
}

// Exit ends a run before the wrapped command starts. Err, when set, has not
// been printed yet.
type Exit struct {
	Code int
	Err  error
}

func (e *Exit) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *Exit) Unwrap() error { return e.Err }

// Execute runs cronclearer against the process's own arguments and streams
// and returns the code the process should exit with.
func Execute() int {
	env := Env{Stdout: os.Stdout, Stderr: os.Stderr, LookupEnv: os.LookupEnv}
	code, err := Run(context.Background(), os.Args[1:], env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s %v\n", errorPrefix(env.Stderr, env.LookupEnv), err)
	}
	return code
}

// Run resolves args and, unless they ask for help or version, runs the
// command they name. The returned code mirrors the wrapped command's exit
// status. A non-nil error has not been reported to the user yet.
func Run(ctx context.Context, args []string, env Env) (int, error) {
	if env.LookupEnv == nil {
		env.LookupEnv = func(string) (string, bool) { return "", false }
	}
	a := &app{env: env}
	cmd := newRootCommand(a)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	err := cmd.ExecuteContext(ctx)
	if a.early != nil {
		return a.early.Code, a.early.Err
	}
	var exit *Exit
	if errors.As(err, &exit) {
		return exit.Code, exit.Err
	}
	if err != nil {
		return ExitFailure, err
	}
	return a.code, nil
}

type options struct {
	help        bool
	ignoreText  bool
	checkStdout bool
	version     bool
	configPath  string
	verbose     bool
}

type app struct {
	env   Env
	opts  options
	code  int
	early *Exit
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           programName + " [flags] <command> [args...]",
		Short:         "Run a command and stay quiet unless it fails",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runE(cmd, args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	// Everything from the first non-flag token on belongs to the command.
	flags.SetInterspersed(false)
	flags.BoolVarP(&a.opts.help, "help", "h", false, "show usage information")
	flags.BoolVarP(&a.opts.ignoreText, "ignore-text", "i", false, "react only on exit-code, not on text on stderr")
	flags.BoolVarP(&a.opts.checkStdout, "stdout", "s", false, "react on exit-code, or on text on stdout")
	flags.BoolVarP(&a.opts.version, "version", "V", false, "show the version")
	flags.StringVar(&a.opts.configPath, "config", "", "read settings from `path`")
	flags.BoolVar(&a.opts.verbose, "verbose", false, "log each step to stderr")

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		a.stopEarly(writeUsage(c.ErrOrStderr()))
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &Exit{Code: ExitUsage, Err: err}
	})

	return cmd
}

// stopEarly records a usage-level exit. A write failure is surfaced as the
// error to report.
func (a *app) stopEarly(writeErr error) {
	a.early = &Exit{Code: ExitUsage, Err: writeErr}
}

func (a *app) runE(cmd *cobra.Command, args []string) error {
	if a.opts.version {
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", programName, version.String())
		return &Exit{Code: ExitUsage, Err: err}
	}
	if len(args) == 0 {
		return &Exit{Code: ExitUsage, Err: writeUsage(cmd.ErrOrStderr())}
	}

	code, err := a.run(cmd.Context(), args)
	if err != nil {
		return &Exit{Code: code, Err: err}
	}
	a.code = code
	return nil
}
