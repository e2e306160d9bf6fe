package cmds

import (
	"regexp"
	"strings"
	"unicode"
)

// maxAliases is the number of aliases a single usage string can provide.
const maxAliases = 2

// aliasPattern is anchored to the start of a whitespace separated field of a
// usage string. A match is a short flag (-x), a long flag of three or more
// characters (--xyz) or a bare word of two or more characters.
var aliasPattern = regexp.MustCompile(`^(?:-\w\b|--[\w-]{3,}|\w[\w-]+)`)

// GenerateAliases extracts up to two aliases from a usage string, in the
// order they appear.
//
//	GenerateAliases("-m --my-command [number]", "myCommand")
//	// []string{"-m", "--my-command"}
//
// The command name is only used to identify the command in the returned
// error, which is a *CommandCreationError when no alias could be found.
func GenerateAliases(usage, command string) ([]string, error) {
	var aliases []string
	for _, field := range strings.Fields(usage) {
		m := aliasPattern.FindString(field)
		if m == "" {
			continue
		}
		aliases = append(aliases, m)
		if len(aliases) == maxAliases {
			break
		}
	}
	if len(aliases) == 0 {
		return nil, creationErrorf(command, "usage", "no valid aliases found in %q", usage)
	}
	return aliases, nil
}

// NormalizeName turns a flag into a command name: dashes are dropped and the
// words they separated are camel-cased.
//
//	NormalizeName("--my-command") // "myCommand"
//	NormalizeName("-c")           // "c"
func NormalizeName(flag string) string {
	words := strings.FieldsFunc(flag, func(r rune) bool { return r == '-' })
	var sb strings.Builder
	for i, w := range words {
		if i == 0 {
			sb.WriteString(w)
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	return sb.String()
}

// longest returns the first of the longest strings in ss.
func longest(ss []string) string {
	var l string
	for _, s := range ss {
		if len(s) > len(l) {
			l = s
		}
	}
	return l
}
