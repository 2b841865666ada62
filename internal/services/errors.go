package services

// ValidationError is returned for hard rule violations: the operation must
// not be persisted. Soft rules (conflicts, capacity overflow) never produce
// an error; they come back as warning strings next to the saved record.
type ValidationError struct {
	Msg string
	// Remaining headroom for budget/hours rules, when the rule computes one.
	Remaining *float64
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error {
	return &ValidationError{Msg: msg}
}

func validationErrRemaining(msg string, remaining float64) error {
	return &ValidationError{Msg: msg, Remaining: &remaining}
}
