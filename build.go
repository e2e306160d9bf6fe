package cmds

import (
	"github.com/pkg/errors"
)

// Result is the outcome of a single command.
type Result struct {
	Name string

	// Args holds the command's arguments after capping and numeric
	// coercion. A command invoked without arguments holds the single
	// value true. Args is nil for commands that were not invoked.
	Args []interface{}

	// Valid reports whether Args satisfy the command's rule. Commands
	// that were not invoked are never valid.
	Valid bool
}

// Invoked reports whether the command appeared in the arguments.
func (r Result) Invoked() bool {
	return r.Args != nil
}

// Results holds one Result per registered command, in registration order.
type Results struct {
	list  []Result
	index map[string]int
}

// Get returns the result of the command called name.
func (rs *Results) Get(name string) (Result, bool) {
	i, ok := rs.index[name]
	if !ok {
		return Result{}, false
	}
	return rs.list[i], true
}

// All returns every result in registration order.
func (rs *Results) All() []Result {
	return append([]Result(nil), rs.list...)
}

// Invoked returns the results of the commands that appeared in the
// arguments, in registration order.
func (rs *Results) Invoked() []Result {
	var out []Result
	for _, r := range rs.list {
		if r.Invoked() {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of results.
func (rs *Results) Len() int {
	return len(rs.list)
}

// BuildCommands produces a Result for every directive of t from the tokens
// collected by ParseArgs.
func BuildCommands(t *Table, p *Parsed) *Results {
	rs := &Results{
		list:  make([]Result, 0, len(t.directives)),
		index: make(map[string]int, len(t.directives)),
	}
	for _, d := range t.directives {
		rs.index[d.Name] = len(rs.list)
		rs.list = append(rs.list, build(d, p))
	}
	return rs
}

func build(d *Directive, p *Parsed) Result {
	tokens, ok := p.Args(d.Name)
	if !ok {
		return Result{Name: d.Name}
	}

	if c := d.Cap(); c > 0 && len(tokens) > c {
		tokens = tokens[:c]
	}

	args := CoerceAll(tokens)
	if len(args) == 0 {
		args = []interface{}{true}
	}
	return Result{
		Name:  d.Name,
		Args:  args,
		Valid: d.Rule.Validate(args, d.Cap()),
	}
}

// Dispatch calls the callback of every invoked directive, in registration
// order. The first callback error stops the dispatch and is returned.
func (rs *Results) Dispatch(t *Table) error {
	for _, d := range t.directives {
		if d.Callback == nil {
			continue
		}
		r, ok := rs.Get(d.Name)
		if !ok || !r.Invoked() {
			continue
		}
		if err := d.Callback(r.Args, r.Valid, rs); err != nil {
			return errors.Wrapf(err, "command %s", d.Name)
		}
	}
	return nil
}

// Parse runs the whole pipeline over args (without the program name):
// combined flags are expanded, tokens are assigned to commands, and every
// command is capped and validated. Callbacks are not called; see Run.
func (t *Table) Parse(args []string) (*Results, error) {
	expanded := ExpandAliases(args)
	t.log.Debug("expanded arguments", "args", args, "expanded", expanded)

	p, err := ParseArgs(expanded, t)
	if err != nil {
		t.log.Debug("no leading command", "error", err)
		return nil, err
	}
	for _, name := range p.names {
		t.log.Debug("classified command", "command", name, "tokens", p.args[name])
	}

	rs := BuildCommands(t, p)
	for _, r := range rs.Invoked() {
		t.log.Debug("built command", "command", r.Name, "args", r.Args, "valid", r.Valid)
	}
	return rs, nil
}

// Run is Parse followed by Dispatch. The results are returned even when a
// callback fails.
func (t *Table) Run(args []string) (*Results, error) {
	rs, err := t.Parse(args)
	if err != nil {
		return nil, err
	}
	return rs, rs.Dispatch(t)
}
