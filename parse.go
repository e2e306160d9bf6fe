package cmds

import (
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// Parsed maps every command present in an argument vector to the raw tokens
// that followed it.
type Parsed struct {
	names []string
	args  map[string][]string
}

// Args returns the tokens collected for the command called name, and whether
// the command was invoked at all.
func (p *Parsed) Args(name string) ([]string, bool) {
	a, ok := p.args[name]
	return a, ok
}

// Names returns the invoked commands, in the order they first appeared.
func (p *Parsed) Names() []string {
	return append([]string(nil), p.names...)
}

// ParseArgs assigns every token of args to a command. A token equal to one
// of a directive's aliases opens that command; any other token is appended
// to the command opened last. Invoking a command again discards what was
// collected for its previous invocation.
//
// The first token must be an alias. If it is not, or args is empty, nothing
// is collected and an *InputError is returned.
func ParseArgs(args []string, t *Table) (*Parsed, error) {
	if len(args) == 0 {
		return nil, errors.WithStack(&InputError{})
	}

	p := &Parsed{args: make(map[string][]string)}
	var current string
	for i, arg := range args {
		d, ok := t.Lookup(arg)
		if !ok {
			if i == 0 {
				return nil, errors.WithStack(&InputError{Token: arg})
			}
			p.args[current] = append(p.args[current], arg)
			continue
		}

		current = d.Name
		if _, seen := p.args[current]; !seen {
			p.names = append(p.names, current)
		}
		p.args[current] = []string{}
	}
	return p, nil
}

// SplitLine splits a command line into arguments the way a POSIX shell
// would, honouring quotes and escapes. Environment variables and backquotes
// are left untouched.
func SplitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, errors.Wrapf(err, "split %q", line)
	}
	return args, nil
}
