package loader

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/projconf/models"
)

var (
	intPattern   = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^-?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][-+]?[0-9]+)?$`)
)

// ParseArgs turns command-line arguments into [models.Argv].
//
// Recognised forms are --name=value, --name value, -n value and a bare
// --flag (true). A single or double dash is accepted for every form.
// Numeric values become int64 or float64 and "true"/"false" become bools;
// everything else stays a string. Positional arguments are skipped and "--"
// ends parsing.
func ParseArgs(args []string) models.Argv {
	argv := models.Argv{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !isFlag(arg) {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if n, value, ok := strings.Cut(name, "="); ok {
			argv = append(argv, models.Arg{Name: n, Value: coerceArg(value)})
			continue
		}

		if i+1 < len(args) && !isFlag(args[i+1]) && args[i+1] != "--" {
			argv = append(argv, models.Arg{Name: name, Value: coerceArg(args[i+1])})
			i++
			continue
		}

		argv = append(argv, models.Arg{Name: name, Value: true})
	}

	return argv
}

// isFlag reports whether s names an argument rather than a value. Negative
// numbers are values.
func isFlag(s string) bool {
	if len(s) < 2 || s[0] != '-' || s == "--" {
		return false
	}
	return !floatPattern.MatchString(s)
}

func coerceArg(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}

	if intPattern.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	}
	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}
