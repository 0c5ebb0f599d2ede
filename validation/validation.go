// Package validation evaluates values against named, composable rules.
//
// A rule specification is either a single rule name or a comma-delimited list
// of names, for example "notNull,string". A rule may carry parameters after a
// colon ("integer:3,200", "set:all,photo,illustration"); since parameters are
// themselves comma separated, a parameterized rule must be the last rule of
// its specification. Pass several specifications to combine more than one
// parameterized rule.
//
// Unknown rule names pass, so a misspelled rule silently checks nothing. Use
// Known to vet names that come from outside the package:
//
//	if !validation.Known("nonNegativeInteger") {
//		return fmt.Errorf("unknown rule")
//	}
package validation

import (
	"fmt"
	"strings"
)

// ValidationError reports the first rule a value violated.
type ValidationError struct {
	Name   string      `json:"name"`
	Value  interface{} `json:"value"`
	Reason string      `json:"reason"`
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("value of %s cannot be %s: %s", e.Name, Display(e.Value), e.Reason)
}

// Field is a single named value paired with its rule specification.
type Field struct {
	Name  string
	Value interface{}
	Rules string
}

// Display renders a value for error messages.
func Display(value interface{}) string {
	value = indirect(value)
	if value == nil {
		return "null"
	}
	if s, ok := asString(value); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", value)
}

// Assert checks value against every rule in specs, in order, and returns a
// *ValidationError for the first violation. Rule names that are not part of
// the catalogue pass.
func Assert(name string, value interface{}, specs ...string) error {
	for _, r := range parseRules(specs) {
		check, ok := catalogue[r.name]
		if !ok {
			continue
		}
		if reason := check(value, r.params); reason != "" {
			return &ValidationError{Name: name, Value: value, Reason: reason}
		}
	}
	return nil
}

// Validate checks fields in declared order and stops at the first failure.
// Field names are reported as subject.name.
func Validate(subject string, fields []Field) error {
	for _, field := range fields {
		name := field.Name
		if subject != "" {
			name = subject + "." + field.Name
		}
		if err := Assert(name, field.Value, field.Rules); err != nil {
			return err
		}
	}
	return nil
}

type rule struct {
	name   string
	params []string
}

func parseRules(specs []string) []rule {
	var parsed []rule
	for _, spec := range specs {
		for spec != "" {
			head, tail, _ := strings.Cut(spec, ",")
			if strings.Contains(head, ":") {
				name, params, _ := strings.Cut(spec, ":")
				parsed = append(parsed, rule{name: strings.TrimSpace(name), params: splitParams(params)})
				break
			}
			if name := strings.TrimSpace(head); name != "" {
				parsed = append(parsed, rule{name: name})
			}
			spec = tail
		}
	}
	return parsed
}

func splitParams(params string) []string {
	parts := strings.Split(params, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
