// Package cmds provides a declarative means of building command-line
// programs whose commands are selected by flags.
//
// Commands are declared with a usage string, from which up to two aliases
// are taken (for instance "-c --create <text>" gives "-c" and "--create"),
// an optional rule describing the arguments the command expects, an
// optional maximum amount of arguments, and a callback:
//
//	p := cmds.New("todo").
//		Command("-c --create <text>", "Create a task", create).
//		Rule("<number,string>", 1).
//		Command("-d --delete <id> [id]", "Delete tasks", remove).
//		Rule("<number> [number]", 2)
//	p.Exec()
//
// Given the arguments
//
//	-c 5 -d 1 2
//
// create is called with the arguments [5] and delete with [1 2], both
// valid. Every token up to the next alias belongs to the command opened
// last; the first token must therefore be an alias, or the help menu is
// printed instead. Combined short flags are expanded, and comma grouped
// values are handed out to them in turn: "-ab 1,2" is read as
// "-a 1 -b 2".
//
// # Rules
//
// A rule is a space separated list of slots. Each slot lists the accepted
// types (string, number or boolean) inside angle brackets when the argument
// is required, or square brackets when it is optional. Required slots must
// come first. Arguments past the last slot are checked against the last
// optional slot, so "<number> [string]" accepts one number followed by any
// number of strings.
//
// Arguments that look like numbers are converted to float64 before they are
// checked. A command invoked without arguments receives the single argument
// true, which is what a "<boolean>" rule expects.
//
// An argument mismatch never stops parsing: it is reported through the
// valid flag handed to the command's callback, and through the Results.
package cmds
