package cmds

import (
	"regexp"
	"strings"
)

var (
	// clusterPattern matches combined short flags such as -abc.
	clusterPattern = regexp.MustCompile(`^-(\w{2,})$`)

	// groupPattern matches comma grouped values such as 1,2,3 or 1.5,-2.
	groupPattern = regexp.MustCompile(`^[^\s,]+(?:,[^\s,]+)+$`)
)

// ExpandAliases splits combined short flags into one flag per character and
// hands out comma grouped values to the flags they follow.
//
//	ExpandAliases([]string{"-l", "one", "-abc", "1,2,3"})
//	// []string{"-l", "one", "-a", "1", "-b", "2", "-c", "3"}
//
// Values are merged alternately: the n-th value follows the n-th flag, and
// values left over once every flag has one are appended after the last flag.
// A value group that does not directly follow a flag cluster has no owner
// and is dropped. Empty tokens are dropped as well. Only "-" starts a
// cluster, so values such as /tmp or @bob pass through, and numbers such as
// -12 are never treated as flag clusters.
func ExpandAliases(args []string) []string {
	expanded := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "" {
			continue
		}

		if flags := splitCluster(arg); flags != nil {
			var values []string
			if i+1 < len(args) && groupPattern.MatchString(args[i+1]) {
				values = strings.Split(args[i+1], ",")
				i++
			}
			expanded = append(expanded, alternate(flags, values)...)
			continue
		}

		if groupPattern.MatchString(arg) {
			continue
		}
		expanded = append(expanded, arg)
	}
	return expanded
}

// splitCluster returns the flags held by a combined short flag token, or nil
// if arg is not one.
func splitCluster(arg string) []string {
	if isNumber(arg) {
		return nil
	}
	m := clusterPattern.FindStringSubmatch(arg)
	if m == nil {
		return nil
	}
	flags := make([]string, 0, len(m[1]))
	for _, c := range m[1] {
		flags = append(flags, "-"+string(c))
	}
	return flags
}

// alternate merges a and b, starting with a[0], then b[0], a[1], b[1] and so
// on. Whatever remains of the longer slice is appended.
func alternate(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(b) && b[i] != "" {
			out = append(out, b[i])
		}
	}
	return out
}
