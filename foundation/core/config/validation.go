// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against type, bound, choice
//              and pattern rules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-03-02 v0.2.0: Patterns evaluated with patternx, OneOf rule, removed
//                      struct binding

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/msto63/textkit/foundation/utils/patternx"
)

// ValidationRule defines validation criteria for one key
type ValidationRule struct {
	Required bool
	// Type is one of "string", "int", "bool", "float", "duration"
	Type    string
	Min     *float64
	Max     *float64
	OneOf   []string
	Pattern string
}

// ValidationRules maps keys to their rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Bound is a helper for ValidationRule.Min and Max
func Bound(v float64) *float64 {
	return &v
}

// Validate checks every rule, reporting errors in key order
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "", "string":
	case "int":
		if !c.isNumber(key, true) {
			return fmt.Errorf("field '%s' must be an integer", key)
		}
	case "float":
		if !c.isNumber(key, false) {
			return fmt.Errorf("field '%s' must be a number", key)
		}
	case "bool":
		raw := strings.ToLower(c.GetString(key))
		if raw != "true" && raw != "false" && raw != "1" && raw != "0" {
			return fmt.Errorf("field '%s' must be a boolean", key)
		}
	case "duration":
		_, isString := c.getValue(key).(string)
		if isString || c.lookupEnvSet(key) {
			if _, err := time.ParseDuration(strings.TrimSpace(c.GetString(key))); err != nil {
				return fmt.Errorf("field '%s' must be a valid duration, got '%s'", key, c.GetString(key))
			}
		} else if !c.isNumber(key, false) {
			return fmt.Errorf("field '%s' must be a duration", key)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	if rule.Min != nil || rule.Max != nil {
		v := c.GetFloat(key)
		if rule.Type == "duration" {
			v = c.GetDuration(key).Seconds()
		}
		if rule.Min != nil && v < *rule.Min {
			return fmt.Errorf("field '%s' value %g is less than minimum %g", key, v, *rule.Min)
		}
		if rule.Max != nil && v > *rule.Max {
			return fmt.Errorf("field '%s' value %g is greater than maximum %g", key, v, *rule.Max)
		}
	}

	value := c.GetString(key)
	if len(rule.OneOf) > 0 {
		found := false
		for _, choice := range rule.OneOf {
			if strings.EqualFold(choice, value) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("field '%s' value '%s' must be one of %s", key, value, strings.Join(rule.OneOf, ", "))
		}
	}

	if rule.Pattern != "" {
		p := patternx.New(rule.Pattern)
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid pattern for field '%s': %w", key, err)
		}
		if !p.IsMatch(value, 0) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, value, rule.Pattern)
		}
	}
	return nil
}

func (c *Config) lookupEnvSet(key string) bool {
	_, ok := c.lookupEnv(key)
	return ok
}

func (c *Config) isNumber(key string, integral bool) bool {
	if env, ok := c.lookupEnv(key); ok {
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(env), "%g", &f); err != nil {
			return false
		}
		return !integral || f == float64(int64(f))
	}
	switch v := c.getValue(key).(type) {
	case int, int64, uint64:
		return true
	case float64:
		return !integral || v == float64(int64(v))
	default:
		return false
	}
}
