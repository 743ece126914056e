package position

// Validate promotes a draft to a frozen Position. It checks the five-tuple
// against the category tables, derives the secondary attributes, and
// returns an immutable frozen value. A frozen input is returned unchanged.
//
// Validation is deterministic: the same draft always yields the same result.
// Failure is an *InvalidPositionError naming the conflicting axes; an
// *IncompleteRuleTableError from derivation indicates a defect in the rule
// tables themselves.
func Validate(p Position) (Position, error) {
	if p.frozen {
		return p, nil
	}
	if err := checkCompatible(p.initial, p.medial, p.rank, p.rhyme, p.tone); err != nil {
		return Position{}, err
	}
	derived, err := derive(p)
	if err != nil {
		return Position{}, err
	}
	p.derived = derived
	p.frozen = true
	return p, nil
}

// MustValidate is Validate for statically known-good tuples; it panics on
// error. Intended for tables and tests.
func MustValidate(p Position) Position {
	frozen, err := Validate(p)
	if err != nil {
		panic(err)
	}
	return frozen
}
