package cmds

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the primitive type of an argument value, as named in rule
// notations.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
)

var kindNames = map[string]Kind{
	"string":  KindString,
	"number":  KindNumber,
	"boolean": KindBoolean,
}

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the Kind called name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// KindOf reports the Kind of an argument value. Values produced by this
// package are always a string, a float64 or a bool.
func KindOf(v interface{}) (Kind, bool) {
	switch v.(type) {
	case string:
		return KindString, true
	case float64, int:
		return KindNumber, true
	case bool:
		return KindBoolean, true
	}
	return 0, false
}

// Coerce converts a raw token into an argument value: tokens holding a
// finite decimal number, or an unsigned 0x, 0o or 0b prefixed integer,
// become a float64, anything else stays a string.
func Coerce(token string) interface{} {
	if n, ok := parseNumber(token); ok {
		return n
	}
	return token
}

// CoerceAll applies Coerce to every token.
func CoerceAll(tokens []string) []interface{} {
	if tokens == nil {
		return nil
	}
	values := make([]interface{}, len(tokens))
	for i, tok := range tokens {
		values[i] = Coerce(tok)
	}
	return values
}

func parseNumber(token string) (float64, bool) {
	if strings.TrimSpace(token) == "" {
		return 0, false
	}
	token = strings.TrimSpace(token)
	if n, ok := parsePrefixed(token); ok {
		return n, true
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// parsePrefixed reads unsigned hexadecimal, octal and binary integers such
// as 0x10, 0o17 and 0b101.
func parsePrefixed(token string) (float64, bool) {
	if len(token) < 3 || token[0] != '0' || strings.Contains(token, "_") {
		return 0, false
	}
	switch token[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
	default:
		return 0, false
	}
	n, err := strconv.ParseUint(token, 0, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

func isNumber(token string) bool {
	_, ok := parseNumber(token)
	return ok
}
