// Package cli implements the tasks command-line tool.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"transcript-tasks/internal/pipeline"
)

var (
	appVersion = "dev"
	appCommit  = "none"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit string) {
	appVersion = version
	appCommit = commit
}

// BuildFunc constructs the pipeline on first use so that commands which do not
// need it (version, calendar-auth) start without configuration.
type BuildFunc func(ctx context.Context) (pipeline.UseCase, error)

// Options wires the command tree to its environment.
type Options struct {
	In    io.Reader
	Out   io.Writer
	Build BuildFunc
}

type app struct {
	in    io.Reader
	out   io.Writer
	build BuildFunc
	uc    pipeline.UseCase
}

// NewRootCmd returns the root command with every subcommand attached.
func NewRootCmd(opts Options) *cobra.Command {
	a := &app{in: opts.In, out: opts.Out, build: opts.Build}
	if a.in == nil {
		a.in = os.Stdin
	}
	if a.out == nil {
		a.out = os.Stdout
	}

	root := &cobra.Command{
		Use:   "tasks",
		Short: "Turn meeting transcripts into tracker issues",
		Long: `tasks pulls action items out of transcripts and recordings and can file
them as Jira issues.

Text input is read from a file argument, or from stdin when the argument is "-".`,
		SilenceUsage: true,
	}
	root.SetOut(a.out)

	root.AddCommand(
		a.newExtractCmd(),
		a.newFileCmd(),
		a.newProcessCmd(),
		newCalendarAuthCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(a.out, "tasks %s\ncommit: %s\n", appVersion, appCommit)
			},
		},
	)
	return root
}

func (a *app) useCase(ctx context.Context) (pipeline.UseCase, error) {
	if a.uc != nil {
		return a.uc, nil
	}
	if a.build == nil {
		return nil, fmt.Errorf("pipeline not initialized")
	}
	uc, err := a.build(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing pipeline: %w", err)
	}
	a.uc = uc
	return uc, nil
}

func (a *app) readInput(arg string) (string, error) {
	var (
		raw []byte
		err error
	)
	if arg == "-" {
		raw, err = io.ReadAll(a.in)
	} else {
		raw, err = os.ReadFile(arg)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(raw), nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
