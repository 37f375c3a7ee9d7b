package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseFlag coerces a form value to a bool by integer truthiness:
// "0" is false, any other integer is true.
func ParseFlag(value string) (bool, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("invalid flag %q: %w", value, err)
	}
	return n != 0, nil
}

// TitleCase upper-cases the first letter of each word and lower-cases
// the rest. A Caser is not safe for concurrent use, so one is built per call.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
