package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", max)},
	}
}

// OneOfString passes when value is one of options. Empty values pass so that
// optional fields can be combined with RequiredString.
func OneOfString(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool { return value == "" || slices.Contains(options, value) },
		Error: ValidationError{Field: field, Message: "must be one of: " + strings.Join(options, ", ")},
	}
}

// ValidRole passes when value names one of allowedRoles, ignoring case.
func ValidRole(field, value string, allowedRoles []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.ContainsFunc(allowedRoles, func(r string) bool { return strings.EqualFold(r, value) })
		},
		Error: ValidationError{Field: field, Message: "role must be one of: " + strings.Join(allowedRoles, ", ")},
	}
}
