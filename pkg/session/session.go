// Package session drives a form from a line-oriented action stream.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/kballard/go-shellquote"

	"github.com/jingkaihe/volform/internal/errx"
	"github.com/jingkaihe/volform/pkg/form"
	"github.com/jingkaihe/volform/pkg/selector"
	"github.com/jingkaihe/volform/pkg/volume"
)

// Config configures an Interpreter.
type Config struct {
	Out    io.Writer
	Prompt string        // written before each line when non-empty
	Format volume.Format // encoding of accepted descriptors; json or yaml

	Clock       clock.Clock   // search debounce clock
	SearchDelay time.Duration // search debounce window; search flushes per line

	Logger *slog.Logger
}

// Summary counts what a run did.
type Summary struct {
	Commands int
	Accepted int
	Rejected int
	Failed   int
}

// Interpreter reads one action per line and applies it to a form.
type Interpreter struct {
	form     *form.Form
	out      io.Writer
	prompt   string
	format   volume.Format
	selector *selector.Selector[volume.Descriptor]
	logger   *slog.Logger

	accepted []volume.Descriptor
}

type handler func(ctx context.Context, in *Interpreter, args []string) (outcome, error)

type outcome int

const (
	outcomeOK outcome = iota
	outcomeAccepted
	outcomeRejected
	outcomeQuit
)

type command struct {
	usage string
	help  string
	run   handler
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"select": {"select <mountPoint>", "switch to another volume, discarding edits", cmdSelect},
		"set":    {"set <field>=<value>...", "edit form fields", cmdSet},
		"method": {"method <auto|manual|range>", "choose the sizing policy", cmdMethod},
		"errors": {"errors", "print the errors of the last submit", cmdErrors},
		"show":   {"show", "print the form state", cmdShow},
		"search": {"search [term]", "filter selectable mount points", cmdSearch},
		"submit": {"submit", "validate and print the resulting volume", cmdSubmit},
		"help":   {"help", "list commands", cmdHelp},
		"quit":   {"quit", "stop reading", cmdQuit},
	}
}

// New creates an interpreter for f.
func New(f *form.Form, cfg Config) (*Interpreter, error) {
	switch cfg.Format {
	case "":
		cfg.Format = volume.FormatJSON
	case volume.FormatJSON, volume.FormatYAML:
	default:
		return nil, errx.With(ErrOutputFormat, ": %s is not printable", cfg.Format)
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Interpreter{
		form:   f,
		out:    cfg.Out,
		prompt: cfg.Prompt,
		format: cfg.Format,
		selector: selector.New(f.Volumes(), selector.Config[volume.Descriptor]{
			Clock: cfg.Clock,
			Delay: cfg.SearchDelay,
			Keys:  volume.Descriptor.SearchKeys,
		}),
		logger: cfg.Logger.With("component", "session"),
	}, nil
}

// Accepted returns the descriptors produced by successful submits, in order.
func (in *Interpreter) Accepted() []volume.Descriptor {
	return slices.Clone(in.accepted)
}

// Run reads r until EOF, quit, or ctx is done. Command failures are
// reported on the output and do not stop the run.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) (Summary, error) {
	defer in.selector.Stop()

	var sum Summary
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		in.printPrompt()
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sum.Commands++
		res, err := in.exec(ctx, line)
		if err != nil {
			sum.Failed++
			in.logger.Debug("command failed", "line", line, "error", err)
			fmt.Fprintf(in.out, "error: %v\n", err)
			continue
		}
		switch res {
		case outcomeAccepted:
			sum.Accepted++
		case outcomeRejected:
			sum.Rejected++
		case outcomeQuit:
			return sum, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, errx.Wrap(ErrReadInput, err)
	}
	return sum, nil
}

func (in *Interpreter) exec(ctx context.Context, line string) (outcome, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return outcomeOK, errx.Wrap(ErrUsage, err)
	}
	if len(words) == 0 {
		return outcomeOK, nil
	}

	name := strings.ToLower(words[0])
	if name == "exit" {
		name = "quit"
	}
	cmd, ok := commands[name]
	if !ok {
		return outcomeOK, errx.With(ErrUnknownCommand, ": %q (try help)", words[0])
	}
	return cmd.run(ctx, in, words[1:])
}

func (in *Interpreter) printPrompt() {
	if in.prompt != "" {
		fmt.Fprint(in.out, in.prompt)
	}
}

func usage(name string) error {
	return errx.With(ErrUsage, ": %s", commands[name].usage)
}
