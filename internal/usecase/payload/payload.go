// Package payload checks decoded request bodies before a use case acts on them.
package payload

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Present reports whether every value is set. Like a JavaScript falsy check,
// nil, "", 0 and false count as missing while empty objects and arrays do not.
func Present(values ...any) bool {
	for _, v := range values {
		if err := validate.Var(v, "required"); err != nil {
			return false
		}
	}
	return true
}

// Strings returns the values as strings, or false if any of them is not a string.
func Strings(values ...any) ([]string, bool) {
	res := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		res[i] = s
	}
	return res, true
}
