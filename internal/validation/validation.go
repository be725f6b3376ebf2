// Package validation provides the rule-based field validator used by
// signup and the admin forms. A Rule inspects one field value (with
// access to all values for cross-field rules) and returns an error
// message, or "" when the value passes.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rule validates a single field value. allValues carries every field in
// the form for cross-field rules such as MatchField.
type Rule func(value string, allValues map[string]string) string

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails on empty or whitespace-only values.
func Required(message string) Rule {
	if message == "" {
		message = "This field is required"
	}
	return func(value string, _ map[string]string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// Email fails on non-empty values that do not look like an address.
func Email(message string) Rule {
	if message == "" {
		message = "Please enter a valid email"
	}
	return func(value string, _ map[string]string) string {
		if value != "" && !emailRegex.MatchString(value) {
			return message
		}
		return ""
	}
}

// MinLength fails on non-empty values shorter than min.
func MinLength(min int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("Minimum %d characters required", min)
	}
	return func(value string, _ map[string]string) string {
		if value != "" && len(value) < min {
			return message
		}
		return ""
	}
}

// MaxLength fails on values longer than max.
func MaxLength(max int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("Maximum %d characters allowed", max)
	}
	return func(value string, _ map[string]string) string {
		if len(value) > max {
			return message
		}
		return ""
	}
}

// Numeric fails on non-empty values that do not parse as a number.
func Numeric(message string) Rule {
	if message == "" {
		message = "Please enter a valid number"
	}
	return func(value string, _ map[string]string) string {
		if value == "" {
			return ""
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return message
		}
		return ""
	}
}

// MatchField fails when the value differs from the named field's value.
func MatchField(fieldName, message string) Rule {
	return func(value string, allValues map[string]string) string {
		if value != allValues[fieldName] {
			return message
		}
		return ""
	}
}

// Validate runs each field's rule list against values and returns the
// first error per field. An empty result means the form passes.
func Validate(values map[string]string, rules map[string][]Rule) map[string]string {
	errs := make(map[string]string)
	for field, fieldRules := range rules {
		for _, rule := range fieldRules {
			if msg := rule(values[field], values); msg != "" {
				errs[field] = msg
				break
			}
		}
	}
	return errs
}
