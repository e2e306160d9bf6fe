package cmds

// Validate reports whether args satisfy the rule r. A nil rule accepts
// anything.
//
// Arity: there must be at least as many args as required slots, and, when
// amount is greater than zero, no more than amount args.
//
// Types: the i-th arg is checked against the i-th slot. Args past the
// required slots need an optional slot to cover them; once the declared
// slots run out, the last optional slot is reused for every remaining arg.
// A rule with no optional slots therefore rejects any arg past its required
// ones.
func (r *Rule) Validate(args []interface{}, amount int) bool {
	if r == nil {
		return true
	}

	required, optional := r.Required(), r.Optional()
	if len(args) < required {
		return false
	}
	if amount > 0 && len(args) > amount {
		return false
	}

	for i, arg := range args {
		var slot Slot
		switch {
		case i < required:
			slot = r.Slots[i]
		case optional == 0:
			return false
		case i < required+optional:
			slot = r.Slots[i]
		default:
			slot = r.Slots[len(r.Slots)-1]
		}
		if !slot.Accepts(arg) {
			return false
		}
	}
	return true
}
