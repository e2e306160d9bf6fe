package cmds

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestNewTableDirectives(t *testing.T) {
	table, err := NewTable(
		Command{Usage: "-c --create <text>", Description: "Create", Rule: "<string>", Amount: 1},
		Command{Name: "rm", Usage: "-d --delete"},
		Command{Usage: "--my-command"},
	)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, d := range table.Directives() {
		names = append(names, d.Name)
	}
	if diff := cmp.Diff([]string{"create", "rm", "myCommand"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	d, ok := table.Lookup("--create")
	if !ok || d.Name != "create" {
		t.Fatalf("Lookup(--create) = %v, %v", d, ok)
	}
	if diff := cmp.Diff([]string{"-c", "--create"}, d.Aliases); diff != "" {
		t.Errorf("aliases mismatch (-want +got):\n%s", diff)
	}
	if d.Rule.String() != "<string>" || d.Amount != 1 {
		t.Errorf("rule, amount = %q, %d", d.Rule, d.Amount)
	}
	if table.HasAlias("--rm") {
		t.Error("explicit names must not become aliases")
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		cmds  []Command
		field string
	}{
		{
			name:  "missing usage",
			cmds:  []Command{{Name: "x"}},
			field: "usage",
		},
		{
			name:  "usage without aliases",
			cmds:  []Command{{Name: "x", Usage: "<text>"}},
			field: "usage",
		},
		{
			name: "duplicate alias",
			cmds: []Command{
				{Usage: "-c --create"},
				{Usage: "-c --copy"},
			},
			field: "alias",
		},
		{
			name:  "alias listed twice",
			cmds:  []Command{{Usage: "-c -c"}},
			field: "alias",
		},
		{
			name: "duplicate name",
			cmds: []Command{
				{Name: "a", Usage: "-a"},
				{Name: "a", Usage: "-b"},
			},
			field: "name",
		},
		{
			name:  "negative amount",
			cmds:  []Command{{Usage: "-a --all", Amount: -1}},
			field: "amount",
		},
		{
			name:  "optional before required",
			cmds:  []Command{{Usage: "-a --all", Rule: "[number] <string>"}},
			field: "rule",
		},
		{
			name:  "whitespace in brackets",
			cmds:  []Command{{Usage: "-a --all", Rule: "<number, string>"}},
			field: "rule",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.cmds...)
			if table != nil {
				t.Error("got a table from broken declarations")
			}
			var cerr *CommandCreationError
			if !errors.As(err, &cerr) {
				t.Fatalf("err = %v, want *CommandCreationError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("field = %q, want %q (%v)", cerr.Field, tt.field, err)
			}
			if !errors.Is(err, ErrCommandCreation) {
				t.Errorf("errors.Is(%v, ErrCommandCreation) = false", err)
			}
		})
	}
}

func TestBuilderFluent(t *testing.T) {
	table, err := NewBuilder().
		Command("-c, --create: <text>", "create a task", nil).
		Rule("<number,string>", 1).
		Help("Creates a task from its text.").
		Command("-n, --no-rule", "No rule contained", nil).
		Command("-d, --delete: <id> [id]", "delete a task", nil).
		Rule("<number> [number]", 1).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	create, _ := table.Directive("create")
	if create.Rule.String() != "<number,string>" || create.Amount != 1 || create.Help == "" {
		t.Errorf("create = %+v", create)
	}
	noRule, _ := table.Directive("noRule")
	if noRule.Rule != nil {
		t.Errorf("noRule has rule %q", noRule.Rule)
	}
	del, _ := table.Directive("delete")
	if del.Cap() != 1 {
		t.Errorf("delete Cap() = %d, want 1", del.Cap())
	}
}

func TestBuilderRuleWithoutCommand(t *testing.T) {
	_, err := NewBuilder().Rule("<number>", 1).Command("-a --all", "", nil).Build()
	var cerr *CommandCreationError
	if !errors.As(err, &cerr) || cerr.Field != "rule" {
		t.Fatalf("err = %v, want a rule creation error", err)
	}
}

func TestBuilderDefaultRule(t *testing.T) {
	table, err := NewBuilder().
		DefaultRule("<number> [number]", 0).
		Command("-a --add", "", nil).
		Command("-e --echo", "", nil).
		Rule("[string]", 0).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	add, _ := table.Directive("add")
	if add.Rule.String() != "<number> [number]" {
		t.Errorf("add rule = %q, want the default rule", add.Rule)
	}
	echo, _ := table.Directive("echo")
	if echo.Rule.String() != "[string]" {
		t.Errorf("echo rule = %q, want its own rule", echo.Rule)
	}
}
