package cmds

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrCommandCreation is matched (via errors.Is) by every error that is
	// returned while the directive table is being built.
	ErrCommandCreation = errors.New("command creation error")

	// ErrNoCommand is matched (via errors.Is) by the error returned when
	// the first token of the argument vector does not select a registered
	// command, or when no arguments were given at all.
	ErrNoCommand = errors.New("no valid leading command")
)

// CommandCreationError describes a broken command declaration. The table it
// belongs to cannot be used to parse arguments.
type CommandCreationError struct {
	// Name of the offending command. May be empty when the command had
	// no name and no alias could be derived for it.
	Command string

	// Field of the declaration that is at fault, such as "usage" or
	// "rule".
	Field string

	Reason string
}

func (e *CommandCreationError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("%s: %s: %s", ErrCommandCreation, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s.%s: %s", ErrCommandCreation, e.Command, e.Field, e.Reason)
}

// Is reports whether target is ErrCommandCreation.
func (e *CommandCreationError) Is(target error) bool {
	return target == ErrCommandCreation
}

func creationErrorf(command, field, format string, args ...interface{}) error {
	return errors.WithStack(&CommandCreationError{
		Command: command,
		Field:   field,
		Reason:  fmt.Sprintf(format, args...),
	})
}

// InputError is returned when the argument vector does not start with a
// registered command alias. It is a user error: hosts usually respond by
// printing the help menu.
type InputError struct {
	// The leading token that failed to resolve. Empty when the argument
	// vector itself was empty.
	Token string
}

func (e *InputError) Error() string {
	if e.Token == "" {
		return ErrNoCommand.Error() + ": no arguments given"
	}
	return fmt.Sprintf("%s: %q is not a command", ErrNoCommand, e.Token)
}

// Is reports whether target is ErrNoCommand.
func (e *InputError) Is(target error) bool {
	return target == ErrNoCommand
}
