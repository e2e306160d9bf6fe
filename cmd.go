package cmds

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Program is a command-line program made of flag-selected commands. It adds
// the default help and version commands (and a debug command, if Debug is
// set) to the commands registered by the host, parses the command line and
// runs the callbacks.
type Program struct {
	// The name of the program, shown in the help menu.
	Name string

	// Version printed by the version command.
	Version string

	// A brief, single line description of the program.
	Description string

	// Register a debug command that prints the directive table.
	Debug bool

	// Where help, version and debug output is written. Defaults to
	// os.Stderr.
	Output io.Writer

	// Receives a debug record for every parsing stage. Nil discards them.
	Logger *slog.Logger

	builder *Builder
	table   *Table
}

// New is a convenience function for creating and returning a new *Program.
// When name is empty the base name of os.Args[0] is used.
func New(name string) *Program {
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	}
	return &Program{
		Name:    name,
		Version: "v1.0.0",
		builder: NewBuilder(),
	}
}

func (p *Program) out() io.Writer {
	if p.Output == nil {
		return os.Stderr
	}
	return p.Output
}

func (p *Program) registry() *Builder {
	if p.builder == nil {
		p.builder = NewBuilder()
	}
	if p.table != nil && p.builder.err == nil {
		p.builder.err = creationErrorf("", "usage", "commands cannot be registered after parsing started")
	}
	return p.builder
}

// AddCmd registers complete command declarations.
func (p *Program) AddCmd(cmds ...Command) *Program {
	p.registry().Add(cmds...)
	return p
}

// Command registers a command; see Builder.Command.
func (p *Program) Command(usage, description string, cb CallbackFunc) *Program {
	p.registry().Command(usage, description, cb)
	return p
}

// Rule sets the rule and amount of the last registered command.
func (p *Program) Rule(notation string, amount int) *Program {
	p.registry().Rule(notation, amount)
	return p
}

// Help sets the help page text of the last registered command.
func (p *Program) Help(text string) *Program {
	p.registry().Help(text)
	return p
}

// DefaultRule sets the rule and amount of commands that declare neither.
func (p *Program) DefaultRule(notation string, amount int) *Program {
	p.registry().DefaultRule(notation, amount)
	return p
}

// Table finalizes the registered commands, together with the default ones,
// into the directive table. It is built once; later calls return the same
// table, or an error if commands were registered in the meantime.
func (p *Program) Table() (*Table, error) {
	if p.table != nil {
		if p.builder.err != nil {
			return nil, p.builder.err
		}
		return p.table, nil
	}
	b := p.registry()
	b.defaults = nil
	b.Logger(p.Logger).
		addDefault(p.helpCmd).
		addDefault(p.versionCmd)
	if p.Debug {
		b.addDefault(p.debugCmd)
	}
	t, err := b.Build()
	if err != nil {
		return nil, err
	}
	p.table = t
	return t, nil
}

// Run parses args (without the program name) and calls the callbacks of the
// invoked commands.
func (p *Program) Run(args []string) (*Results, error) {
	t, err := p.Table()
	if err != nil {
		return nil, err
	}
	return t.Run(args)
}

// RunLine is like Run, but takes the arguments as a single command line.
func (p *Program) RunLine(line string) (*Results, error) {
	args, err := SplitLine(line)
	if err != nil {
		return nil, err
	}
	return p.Run(args)
}

// Exec parses the arguments provided on the command line. It is essentially
// a short-hand invocation of
//
//	p.ExecArgs(os.Args[1:])
func (p *Program) Exec() *Results {
	return p.ExecArgs(os.Args[1:])
}

// ExecArgs runs args and returns the results. When the first argument is
// not a command, the help menu is printed and the process exits. Broken
// command declarations and callback errors are printed before exiting.
func (p *Program) ExecArgs(args []string) *Results {
	rs, err := p.Run(args)
	switch {
	case err == nil:
		return rs
	case errors.Is(err, ErrNoCommand):
		p.PrintHelp()
		os.Exit(1)
	case errors.Is(err, ErrCommandCreation):
		fmt.Fprintln(p.out(), "error:", err)
		os.Exit(2)
	default:
		fmt.Fprintln(p.out(), "error:", err)
		os.Exit(1)
	}
	return nil
}

func (p *Program) helpCmd(t *Table) (Command, bool) {
	if _, taken := t.Directive("help"); taken {
		return Command{}, false
	}
	short := t.resolveAlias("-h")
	return Command{
		Name:        "help",
		builtin:     true,
		Usage:       short + " --help",
		Description: "Output help menu.",
		Rule:        "<number,string>",
		Amount:      1,
		Callback: func(args []interface{}, valid bool, _ *Results) error {
			if !valid {
				p.PrintHelp()
				return nil
			}
			return p.PrintCommandHelp(fmt.Sprint(args[0]))
		},
	}, true
}

func (p *Program) versionCmd(t *Table) (Command, bool) {
	if _, taken := t.Directive("version"); taken {
		return Command{}, false
	}
	short := t.resolveAlias("-v")
	return Command{
		Name:        "version",
		builtin:     true,
		Usage:       short + " --version",
		Description: "Output version information.",
		Callback: func([]interface{}, bool, *Results) error {
			fmt.Fprintln(p.out(), p.Version)
			return nil
		},
	}, true
}

func (p *Program) debugCmd(t *Table) (Command, bool) {
	if _, taken := t.Directive("debug"); taken {
		return Command{}, false
	}
	short := t.resolveAlias("-d")
	return Command{
		Name:        "debug",
		builtin:     true,
		Usage:       short + " --debug",
		Description: "Output debug information.",
		Callback: func([]interface{}, bool, *Results) error {
			p.printDirectives(t)
			return nil
		},
	}, true
}

// PrintHelp prints the main help page: every command, its usage and its
// description.
func (p *Program) PrintHelp() {
	out := p.out()
	bold := color.New(color.Bold)

	fmt.Fprintln(out)
	bold.Fprintf(out, "Program: %s (%s)\n", p.Name, p.Version)
	if p.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", p.Description)
	}

	t, err := p.Table()
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}

	var user, defaults []*Directive
	for _, d := range t.directives {
		if d.builtin {
			defaults = append(defaults, d)
			continue
		}
		user = append(user, d)
	}

	fmt.Fprintln(out)
	bold.Fprintln(out, "Commands:")
	printUsages(out, user)
	if len(defaults) > 0 {
		fmt.Fprintln(out)
		bold.Fprintln(out, "Defaults:")
		printUsages(out, defaults)
	}
	fmt.Fprintf(out, "\nUsage: %s <command> [...args]\n\n", p.Name)
}

// PrintCommandHelp prints the help page of the command selected by key,
// which may be the command's name or one of its aliases.
func (p *Program) PrintCommandHelp(key string) error {
	t, err := p.Table()
	if err != nil {
		return err
	}
	d, ok := t.Directive(key)
	if !ok {
		d, ok = t.Lookup(key)
	}
	if !ok {
		return errors.Errorf("no such command: %q", key)
	}

	out := p.out()
	text := d.Help
	if text == "" {
		text = d.Description
	}
	if text == "" {
		text = "There is no help page for this command."
	}

	fmt.Fprintln(out)
	color.New(color.Bold).Fprintf(out, "Program: %s (%s)\n", p.Name, p.Version)
	fmt.Fprintf(out, "Command: %s\n\n", strings.Join(d.Aliases, ", "))
	fmt.Fprintf(out, "%s\n\n", text)
	fmt.Fprintf(out, "Usage: %s %s\n\n", p.Name, d.Usage)
	return nil
}

func (p *Program) printDirectives(t *Table) {
	tw := tabwriter.NewWriter(p.out(), 0, 4, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "NAME\tALIASES\tRULE\tAMOUNT")
	for _, d := range t.directives {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", d.Name, strings.Join(d.Aliases, ","), d.Rule, d.Cap())
	}
}

func printUsages(w io.Writer, ds []*Directive) {
	tw := tabwriter.NewWriter(w, 0, 4, 4, ' ', 0)
	defer tw.Flush()
	for _, d := range ds {
		fmt.Fprintf(tw, "\t%s\t%s\n", d.Usage, d.Description)
	}
}
