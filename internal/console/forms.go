package console

import (
	"fmt"
	"strconv"
	"strings"
)

// splitCommand tokenizes a line, keeping double-quoted runs together so
// fields like name="Caesar Salad" survive.
func splitCommand(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		fields = append(fields, current.String())
	}
	return fields
}

// form is a submitted key=value argument set.
type form map[string]string

func parseForm(args []string) form {
	f := make(form, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			// bare words act as flags
			f[arg] = ""
			continue
		}
		f[key] = value
	}
	return f
}

func (f form) get(key string) string {
	return f[key]
}

func (f form) has(key string) bool {
	_, ok := f[key]
	return ok
}

// price parses the price field the way the menu form did: a decimal string
// becomes a number, and anything else is a validation failure.
func (f form) price(key string) (float64, error) {
	raw := f[key]
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return v, nil
}

func (f form) id(key string) (int, error) {
	raw := f[key]
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}

func (f form) boolFlag(key string) bool {
	v := strings.ToLower(f[key])
	return v == "yes" || v == "true" || v == "1" || v == "on"
}
