// Command cmds is a small host for the cmds package. It registers a command
// table (a built-in to-do list, or one loaded from a YAML or TOML file),
// parses the remaining arguments against it and prints what every invoked
// command received.
//
//	cmds [options] -- <command> [args...] [<command> [args...]...]
//	cmds -c 5 -d 1 2
//	cmds --config table.yaml -- --greet world
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/nesv/cmds"
	"github.com/nesv/cmds/internal/config"
)

// ExitError carries the exit code main should use.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, "error:", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type options struct {
	config    string
	line      string
	logLevel  string
	logFormat string
	noColor   bool
}

// splitHostArgs separates the host's own options from the arguments meant
// for the command table. Host options are only recognised before a "--".
func splitHostArgs(args []string) (host, rest []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return nil, args
}

func parseOptions(args []string, errOut io.Writer) (*options, error) {
	var opts options
	fs := flag.NewFlagSet("cmds", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.config, "config", "", "Path to a YAML or TOML command table.")
	fs.StringVar(&opts.line, "line", "", "Parse this command line instead of the trailing arguments.")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Logging level: debug, info, warn or error.")
	fs.StringVar(&opts.logFormat, "log-format", "text", "Log output format: text or json.")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored output.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &ExitError{Code: 0}
		}
		return nil, &ExitError{Code: 2, Err: err}
	}
	if fs.NArg() > 0 {
		return nil, &ExitError{Code: 2, Err: errors.Errorf("unexpected arguments before --: %q", fs.Args())}
	}
	return &opts, nil
}

func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func run(out, errOut io.Writer, args []string) error {
	hostArgs, cmdArgs := splitHostArgs(args)
	opts, err := parseOptions(hostArgs, errOut)
	if err != nil {
		return err
	}
	if opts.noColor {
		color.NoColor = true
	}

	p := cmds.New("cmds")
	p.Output = out
	p.Logger = newLogger(opts.logLevel, opts.logFormat, errOut)

	if opts.config != "" {
		file, err := config.Load(opts.config)
		if err != nil {
			return &ExitError{Code: 2, Err: err}
		}
		file.Apply(p, func(c config.Command) cmds.CallbackFunc {
			label := c.Name
			if label == "" {
				label = strings.Fields(c.Usage)[0]
			}
			return printResult(out, label)
		})
	} else {
		registerTodo(p, out)
	}

	var rs *cmds.Results
	if opts.line != "" {
		rs, err = p.RunLine(opts.line)
	} else {
		rs, err = p.Run(cmdArgs)
	}
	switch {
	case errors.Is(err, cmds.ErrNoCommand):
		p.PrintHelp()
		return &ExitError{Code: 1}
	case errors.Is(err, cmds.ErrCommandCreation):
		return &ExitError{Code: 2, Err: err}
	case err != nil:
		return err
	}

	p.Logger.Info("parsed", "invoked", len(rs.Invoked()), "registered", rs.Len())
	return nil
}

// registerTodo registers the built-in to-do command table.
func registerTodo(p *cmds.Program, out io.Writer) {
	p.Description = "A to-do list that only reports what it was asked to do."
	p.Command("-c --create <text>", "Create a task.", printResult(out, "create")).
		Rule("<number,string>", 1).
		Command("-d --delete <id> [id]", "Delete one or more tasks.", printResult(out, "delete")).
		Rule("<number> [number]", 2).
		Command("-l --list [done]", "List tasks, optionally only finished ones.", printResult(out, "list")).
		Rule("[boolean,string]", 1).
		Help("Lists every task. Pass \"done\" to only list finished tasks.")
}

func printResult(w io.Writer, name string) cmds.CallbackFunc {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	return func(args []interface{}, valid bool, _ *cmds.Results) error {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = fmt.Sprintf("%v", a)
		}
		status := ok.Sprint("valid")
		if !valid {
			status = bad.Sprint("invalid")
		}
		_, err := fmt.Fprintf(w, "%s: [%s] %s\n", name, strings.Join(parts, " "), status)
		return err
	}
}
