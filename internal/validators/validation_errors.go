package validators

import "strings"

// ValidationErrors collects every rule a value broke.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, err := range v {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() []error { return v }

// Err returns nil when no rule failed.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
