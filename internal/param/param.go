// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Param structure, the declared configurable input of a
// component.
//
// Why have a formal Param descriptor?
//
// A component's params are its contract with whoever deploys it. The descriptor
// lets the configuration engine decide, for each input, whether a value must be
// collected from the user or can fall back to a declared default. The remaining
// fields (description, hidden, constraints) are metadata that prompts and the
// answers sample generator use to present the input well.
package param

import (
	"fmt"
	"regexp"
)

// Param is a single declared input of a component.
type Param struct {
	// Name is the key under which the resolved value is stored.
	Name string

	// Description is a human readable explanation shown when prompting.
	Description string

	// Default is used when no answer is supplied. A nil Default means the
	// param has no default and must be answered.
	Default any

	// Hidden marks secrets; prompts must not echo them.
	Hidden bool

	// Constraints restrict the accepted values.
	Constraints []Constraint
}

// Constraint restricts the values a param accepts.
type Constraint struct {
	// AllowedPattern is a regular expression the whole value must match.
	AllowedPattern string

	// Description explains the constraint to the user.
	Description string
}

// HasDefault reports whether a default value is declared.
func (p Param) HasDefault() bool {
	return p.Default != nil
}

// ConstraintError is returned when a value violates one of a param's constraints.
type ConstraintError struct {
	Param      string
	Value      string
	Constraint Constraint
}

// Error implements the error interface for ConstraintError.
func (e *ConstraintError) Error() string {
	if e.Constraint.Description != "" {
		return fmt.Sprintf("value %q for param '%s' is invalid: %s", e.Value, e.Param, e.Constraint.Description)
	}
	return fmt.Sprintf("value %q for param '%s' does not match pattern %q", e.Value, e.Param, e.Constraint.AllowedPattern)
}

// Validate checks value against every constraint of the param. A nil value is
// never validated; absence is reported by the consumers of the value.
func (p Param) Validate(value any) error {
	if value == nil {
		return nil
	}
	str := fmt.Sprint(value)
	for _, c := range p.Constraints {
		if c.AllowedPattern == "" {
			continue
		}
		re, err := compile(c.AllowedPattern)
		if err != nil {
			return fmt.Errorf("param '%s' has an invalid allowed_pattern %q: %w", p.Name, c.AllowedPattern, err)
		}
		if !re.MatchString(str) {
			return &ConstraintError{Param: p.Name, Value: str, Constraint: c}
		}
	}
	return nil
}

// compile anchors the pattern so it must match the whole value.
func compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

// CheckPatterns reports the first constraint whose pattern does not compile.
// Definitions are checked once at load time so that Validate only fails on
// bad values.
func (p Param) CheckPatterns() error {
	for _, c := range p.Constraints {
		if c.AllowedPattern == "" {
			continue
		}
		if _, err := compile(c.AllowedPattern); err != nil {
			return fmt.Errorf("param '%s' has an invalid allowed_pattern %q: %w", p.Name, c.AllowedPattern, err)
		}
	}
	return nil
}
