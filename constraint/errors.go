package constraint

import (
	"fmt"
	"strings"
)

// The error kinds below signal contract violations by the caller (e.g. a
// decision-diagram implementation invoking bound logic on the wrong kind of
// node). They are returned at the point of detection and are never defaulted
// or retried. Check for them with errors.As.

// MultiVariableError reports bound derivation invoked on a constraint that
// does not have exactly one variable.
type MultiVariableError struct {
	Variables []string
}

func (e MultiVariableError) Error() string {
	return fmt.Sprintf("test does not have exactly one variable (it has [%s])", strings.Join(e.Variables, " "))
}

// MissingVariableError reports a forced coefficient lookup for a variable the
// constraint does not contain.
type MissingVariableError struct {
	Variable  string
	Available []string
}

func (e MissingVariableError) Error() string {
	return fmt.Sprintf("missing variable %s, only found [%s]", e.Variable, strings.Join(e.Available, " "))
}

// MissingAssignmentError reports a full evaluation whose assignment does not
// cover every variable of the constraint.
type MissingAssignmentError struct {
	Variable   string
	Constraint string
}

func (e MissingAssignmentError) Error() string {
	return fmt.Sprintf("assignment does not include variable %s required for test %s", e.Variable, e.Constraint)
}
