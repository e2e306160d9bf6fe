package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func runForTest(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestRunTodo(t *testing.T) {
	out, _, err := runForTest(t, "--no-color", "--", "-c", "5", "-d", "1", "2")
	if err != nil {
		t.Fatal(err)
	}
	want := "create: [5] valid\ndelete: [1 2] valid\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunWithoutHostOptions(t *testing.T) {
	out, _, err := runForTest(t, "-cd", "x,7", "-l")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"create: [x] valid", "delete: [7] valid", "list: [true] valid"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestRunLine(t *testing.T) {
	out, _, err := runForTest(t, "--no-color", "--line", `-c "buy milk" -d one`, "--")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"create: [buy milk] valid", "delete: [one] invalid"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestRunNoLeadingCommand(t *testing.T) {
	out, _, err := runForTest(t, "5", "-c")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("err = %v, want exit code 1", err)
	}
	if !strings.Contains(out, "Usage: cmds <command> [...args]") {
		t.Errorf("help not printed:\n%s", out)
	}
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	table := "name: greeter\ncommands:\n  - name: greet\n    usage: -g --greet <name>\n    rule: \"<string>\"\n    amount: 1\n"
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := runForTest(t, "--no-color", "--config", path, "--", "--greet", "world", "extra")
	if err != nil {
		t.Fatal(err)
	}
	if want := "greet: [world] valid\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunBadOptions(t *testing.T) {
	_, _, err := runForTest(t, "--bogus", "--", "-c")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Fatalf("err = %v, want exit code 2", err)
	}
}

func TestRunDebugLogging(t *testing.T) {
	_, errOut, err := runForTest(t, "--no-color", "--log-level", "debug", "--log-format", "json", "--", "-c", "x")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, `"msg":"classified command"`) {
		t.Errorf("debug log missing:\n%s", errOut)
	}
}
