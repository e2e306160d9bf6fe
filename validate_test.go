package cmds

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		rule   string
		amount int
		args   []interface{}
		want   bool
	}{
		{"required match", "<number>", 0, []interface{}{1.0}, true},
		{"required wrong type", "<number>", 0, []interface{}{"a"}, false},
		{"union slot", "<number,string>", 1, []interface{}{"a"}, true},
		{"too few", "<number> <number>", 0, []interface{}{1.0}, false},
		{"too many for amount", "<number> [number]", 2, []interface{}{1.0, 2.0, 3.0}, false},
		{"no optional slot", "<number>", 0, []interface{}{1.0, 2.0}, false},
		{"optional present", "<number> [string]", 0, []interface{}{1.0, "a"}, true},
		{"optional absent", "<number> [string]", 0, []interface{}{1.0}, true},
		{"optional overflow", "<number> [string]", 0, []interface{}{1.0, "a", "b", "c"}, true},
		{"optional overflow mismatch", "<number> [string]", 0, []interface{}{1.0, "a", 2.0}, false},
		{"last optional slot repeats", "[number] [string]", 0, []interface{}{1.0, "a", "b"}, true},
		{"second optional slot checked", "[number] [string]", 0, []interface{}{1.0, 2.0}, false},
		{"only optional, none given", "[number]", 0, []interface{}{}, true},
		{"boolean sentinel", "<boolean>", 0, []interface{}{true}, true},
		{"boolean sentinel rejected", "<number>", 0, []interface{}{true}, false},
		{"unknown value type", "<string>", 0, []interface{}{struct{}{}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MustParseRule(tt.rule)
			if got := r.Validate(tt.args, tt.amount); got != tt.want {
				t.Errorf("%q.Validate(%v, %d) = %v, want %v", tt.rule, tt.args, tt.amount, got, tt.want)
			}
		})
	}
}

func TestValidateNilRule(t *testing.T) {
	var r *Rule
	for _, args := range [][]interface{}{nil, {true}, {1.0, "x", false}} {
		if !r.Validate(args, 1) {
			t.Errorf("nil rule rejected %v", args)
		}
	}
}

func TestValidateArityMonotonic(t *testing.T) {
	r := MustParseRule("<number,string,boolean> <number,string,boolean> <number,string,boolean>")
	for _, args := range [][]interface{}{
		{},
		{1.0},
		{"a", true},
	} {
		if r.Validate(args, 0) {
			t.Errorf("Validate(%v) = true with %d required slots", args, r.Required())
		}
	}
}
