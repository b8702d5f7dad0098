// Package validation evaluates ordered, declarative field rules against a
// request payload and collects one human-readable message per invalid field.
//
// Fields are represented as *string: nil means the key was absent from the
// payload, a pointer to "" means it was present but empty. Every field is
// evaluated; within a field the first failing check wins.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Check is a single predicate on a field value with the message reported when
// it fails.
type Check struct {
	Message string
	ok      func(value *string) bool
}

// Field is one rule declaration: a named value and its checks, in order.
type Field struct {
	Name   string
	Value  *string
	Checks []Check
}

// Rules builds Field declarations and runs them. Format and length checks are
// delegated to go-playground/validator.
type Rules struct {
	v *validator.Validate
}

// New returns a Rules backed by a fresh validator instance.
func New() *Rules {
	return &Rules{v: validator.New()}
}

// Validator exposes the underlying validator for struct-tag validation.
func (r *Rules) Validator() *validator.Validate {
	return r.v
}

// Field starts a rule declaration for name.
func (r *Rules) Field(name string, value *string, checks ...Check) Field {
	return Field{Name: name, Value: value, Checks: checks}
}

// Exists fails when the key was absent.
func (r *Rules) Exists(msg string) Check {
	return Check{Message: msg, ok: func(v *string) bool { return v != nil }}
}

// NotEmpty fails when the value is absent or the empty string.
func (r *Rules) NotEmpty(msg string) Check {
	return Check{Message: msg, ok: func(v *string) bool { return v != nil && *v != "" }}
}

// Email fails unless the value is a syntactically valid email address.
func (r *Rules) Email(msg string) Check {
	return r.tag("email", msg)
}

// Length fails unless lo <= rune count <= hi.
func (r *Rules) Length(lo, hi int, msg string) Check {
	return r.tag(fmt.Sprintf("min=%d,max=%d", lo, hi), msg)
}

// Equals fails unless the value equals other. Two absent values are equal.
func (r *Rules) Equals(other *string, msg string) Check {
	return Check{Message: msg, ok: func(v *string) bool {
		if v == nil || other == nil {
			return v == nil && other == nil
		}
		return *v == *other
	}}
}

func (r *Rules) tag(tag, msg string) Check {
	return Check{Message: msg, ok: func(v *string) bool {
		return v != nil && r.v.Var(*v, tag) == nil
	}}
}

// Evaluate runs every field and returns the violation list in declaration
// order. An empty result means the payload is valid.
func Evaluate(fields ...Field) []string {
	var violations []string
	for _, f := range fields {
		for _, c := range f.Checks {
			if !c.ok(f.Value) {
				violations = append(violations, c.Message)
				break
			}
		}
	}
	return violations
}
