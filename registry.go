package cmds

import (
	"io"
	"log/slog"
	"strings"
)

// CallbackFunc is called for every command the user invoked, once all
// commands have been built. args are the command's (capped and coerced)
// arguments, valid is the outcome of its rule, and results holds the
// outcome of every registered command.
type CallbackFunc func(args []interface{}, valid bool, results *Results) error

// Command is the declaration of a command, as authored by the host program.
type Command struct {
	// Name the command's result is stored under. When empty, the name is
	// derived from the longest alias (see NormalizeName).
	Name string

	// Usage holds the aliases that select the command, optionally followed
	// by a human readable argument description, e.g.
	// "-c --create <text>".
	Usage string

	// A brief, single line description of the command.
	Description string

	// Longer text shown on the command's own help page.
	Help string

	// Rule is a notation such as "<number> [number,string]" describing the
	// expected arguments. Commands without a rule are always valid.
	Rule string

	// Maximum number of arguments kept for the command; 0 means no limit.
	Amount int

	Callback CallbackFunc

	builtin bool
}

// Directive is a finalized command: aliases extracted and rule parsed.
type Directive struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Help        string
	Rule        *Rule
	Amount      int
	Callback    CallbackFunc

	builtin bool
}

// Cap returns the number of arguments kept for the directive, or 0 if there
// is no limit. A positive Amount is never allowed to be lower than the
// number of required slots of the directive's rule.
func (d *Directive) Cap() int {
	if d.Amount <= 0 {
		return 0
	}
	if r := d.Rule.Required(); r > d.Amount {
		return r
	}
	return d.Amount
}

// Table is the directive table arguments are parsed against. It is built
// once by a Builder and read-only afterwards.
type Table struct {
	directives []*Directive
	byName     map[string]*Directive
	byAlias    map[string]*Directive
	log        *slog.Logger
}

// NewTable finalizes cmds into a Table. The first broken declaration is
// returned as a *CommandCreationError.
func NewTable(cmds ...Command) (*Table, error) {
	return NewBuilder().Add(cmds...).Build()
}

func newTable(log *slog.Logger) *Table {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Table{
		byName:  make(map[string]*Directive),
		byAlias: make(map[string]*Directive),
		log:     log,
	}
}

func (t *Table) add(c Command) error {
	aliases, err := GenerateAliases(c.Usage, c.Name)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = NormalizeName(longest(aliases))
	}
	if name == "" {
		return creationErrorf(c.Usage, "name", "cannot derive a name from aliases %q", aliases)
	}
	if _, ok := t.byName[name]; ok {
		return creationErrorf(name, "name", "command is already registered")
	}
	if c.Amount < 0 {
		return creationErrorf(name, "amount", "must not be negative, got %d", c.Amount)
	}
	for i, a := range aliases {
		if other, ok := t.byAlias[a]; ok {
			return creationErrorf(name, "alias", "%q conflicts with command %s", a, other.Name)
		}
		for _, b := range aliases[:i] {
			if a == b {
				return creationErrorf(name, "alias", "%q is listed twice", a)
			}
		}
	}

	rule, err := ParseRule(c.Rule, name)
	if err != nil {
		return err
	}

	d := &Directive{
		Name:        name,
		Aliases:     aliases,
		Usage:       c.Usage,
		Description: c.Description,
		Help:        c.Help,
		Rule:        rule,
		Amount:      c.Amount,
		Callback:    c.Callback,
		builtin:     c.builtin,
	}
	t.directives = append(t.directives, d)
	t.byName[name] = d
	for _, a := range aliases {
		t.byAlias[a] = d
	}
	return nil
}

// Lookup returns the directive selected by alias.
func (t *Table) Lookup(alias string) (*Directive, bool) {
	d, ok := t.byAlias[alias]
	return d, ok
}

// Directive returns the directive called name.
func (t *Table) Directive(name string) (*Directive, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// Directives returns every directive in registration order.
func (t *Table) Directives() []*Directive {
	return append([]*Directive(nil), t.directives...)
}

// HasAlias reports whether alias selects any directive.
func (t *Table) HasAlias(alias string) bool {
	_, ok := t.byAlias[alias]
	return ok
}

// resolveAlias returns alias, or its upper-cased form when another
// directive already uses it.
func (t *Table) resolveAlias(alias string) string {
	if t.HasAlias(alias) {
		return strings.ToUpper(alias)
	}
	return alias
}

// Builder collects command declarations. Calls can be chained; the first
// error encountered is kept and reported by Build.
//
//	table, err := cmds.NewBuilder().
//		Command("-c --create <text>", "Create a task", create).
//		Rule("<number,string>", 1).
//		Command("-d --delete <id> [id]", "Delete tasks", remove).
//		Rule("<number> [number]", 2).
//		Build()
type Builder struct {
	cmds        []Command
	defaultRule string
	defaultAmt  int
	log         *slog.Logger
	defaults    []func(t *Table) (Command, bool)
	err         error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add registers complete command declarations.
func (b *Builder) Add(cmds ...Command) *Builder {
	b.cmds = append(b.cmds, cmds...)
	return b
}

// Command registers a command. Rule and Help attach to the command most
// recently registered this way.
func (b *Builder) Command(usage, description string, cb CallbackFunc) *Builder {
	return b.Add(Command{Usage: usage, Description: description, Callback: cb})
}

// Rule sets the rule notation and argument amount of the last registered
// command.
func (b *Builder) Rule(notation string, amount int) *Builder {
	c := b.last("rule")
	if c != nil {
		c.Rule, c.Amount = notation, amount
	}
	return b
}

// Help sets the long help text of the last registered command.
func (b *Builder) Help(text string) *Builder {
	c := b.last("help")
	if c != nil {
		c.Help = text
	}
	return b
}

// DefaultRule sets the rule and amount used by commands that declare
// neither.
func (b *Builder) DefaultRule(notation string, amount int) *Builder {
	b.defaultRule, b.defaultAmt = notation, amount
	return b
}

// Logger sets the logger the finalized Table reports parsing stages to.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.log = l
	return b
}

func (b *Builder) last(field string) *Command {
	if len(b.cmds) == 0 {
		if b.err == nil {
			b.err = creationErrorf("", field, "no command registered to attach it to")
		}
		return nil
	}
	return &b.cmds[len(b.cmds)-1]
}

// Build finalizes the registered commands into a Table.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := newTable(b.log)
	for _, c := range b.cmds {
		if c.Rule == "" && c.Amount == 0 {
			c.Rule, c.Amount = b.defaultRule, b.defaultAmt
		}
		if err := t.add(c); err != nil {
			return nil, err
		}
	}
	for _, def := range b.defaults {
		c, ok := def(t)
		if !ok {
			continue
		}
		if err := t.add(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// addDefault registers a command that is declared only after every other
// command is in the table, so it can avoid their names and aliases.
func (b *Builder) addDefault(def func(t *Table) (Command, bool)) *Builder {
	b.defaults = append(b.defaults, def)
	return b
}
