package cmds

import (
	"strings"
	"unicode"
)

// Slot is one position of a rule notation.
type Slot struct {
	// Kinds accepted at this position. Never empty.
	Kinds []Kind

	// Required slots are written as <kind,...>, optional ones as
	// [kind,...].
	Required bool
}

// Accepts reports whether the Kind of v is one of the slot's kinds.
func (s Slot) Accepts(v interface{}) bool {
	k, ok := KindOf(v)
	if !ok {
		return false
	}
	for _, sk := range s.Kinds {
		if sk == k {
			return true
		}
	}
	return false
}

func (s Slot) String() string {
	names := make([]string, len(s.Kinds))
	for i, k := range s.Kinds {
		names[i] = k.String()
	}
	if s.Required {
		return "<" + strings.Join(names, ",") + ">"
	}
	return "[" + strings.Join(names, ",") + "]"
}

// Rule is the parsed form of a rule notation such as
// "<string> <number> [number,string]". Required slots always precede
// optional slots.
type Rule struct {
	Slots []Slot

	required int
}

// ParseRule parses a rule notation. The command name only identifies the
// command in the returned error, which is a *CommandCreationError when:
//
//   - a slot contains whitespace inside its brackets
//   - a slot is not enclosed in <> or []
//   - a slot is empty or names an unknown kind
//   - an optional slot precedes a required one
//
// An empty (or all whitespace) notation yields a nil *Rule and no error;
// commands without a rule are always valid.
func ParseRule(notation, command string) (*Rule, error) {
	if err := checkBracketWhitespace(notation, command); err != nil {
		return nil, err
	}

	fields := strings.Fields(notation)
	if len(fields) == 0 {
		return nil, nil
	}

	r := &Rule{Slots: make([]Slot, 0, len(fields))}
	for _, field := range fields {
		slot, err := parseSlot(field, command)
		if err != nil {
			return nil, err
		}
		if slot.Required {
			if len(r.Slots) > r.required {
				return nil, creationErrorf(command, "rule", "optional slot %s cannot precede required slot %s",
					r.Slots[len(r.Slots)-1], field)
			}
			r.required++
		}
		r.Slots = append(r.Slots, slot)
	}
	return r, nil
}

// MustParseRule is like ParseRule, but panics on error.
func MustParseRule(notation string) *Rule {
	r, err := ParseRule(notation, "")
	if err != nil {
		panic(err)
	}
	return r
}

// Required returns the number of required slots.
func (r *Rule) Required() int {
	if r == nil {
		return 0
	}
	return r.required
}

// Optional returns the number of optional slots.
func (r *Rule) Optional() int {
	if r == nil {
		return 0
	}
	return len(r.Slots) - r.required
}

func (r *Rule) String() string {
	if r == nil {
		return ""
	}
	parts := make([]string, len(r.Slots))
	for i, s := range r.Slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func checkBracketWhitespace(notation, command string) error {
	var open rune
	for _, c := range notation {
		switch {
		case open == 0 && (c == '<' || c == '['):
			open = c
		case open == '<' && c == '>', open == '[' && c == ']':
			open = 0
		case open != 0 && unicode.IsSpace(c):
			return creationErrorf(command, "rule", "%q cannot contain whitespace inside of the brackets", notation)
		}
	}
	return nil
}

func parseSlot(field, command string) (Slot, error) {
	var slot Slot
	switch {
	case len(field) >= 2 && field[0] == '<' && field[len(field)-1] == '>':
		slot.Required = true
	case len(field) >= 2 && field[0] == '[' && field[len(field)-1] == ']':
	default:
		return slot, creationErrorf(command, "rule", "malformed slot %q", field)
	}

	inner := field[1 : len(field)-1]
	if inner == "" {
		return slot, creationErrorf(command, "rule", "empty slot %q", field)
	}
	for _, name := range strings.Split(inner, ",") {
		k, ok := ParseKind(name)
		if !ok {
			return slot, creationErrorf(command, "rule", "unknown type %q in slot %q", name, field)
		}
		slot.Kinds = append(slot.Kinds, k)
	}
	return slot, nil
}
