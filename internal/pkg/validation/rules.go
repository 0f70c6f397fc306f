package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	AcademicYearPattern = `^(\d{4})/(\d{4})$`
	DigitsPattern       = `^[0-9]+$`
	DateLayout          = "2006-01-02"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	AcademicYear *regexp.Regexp
	Digits       *regexp.Regexp
}{
	AcademicYear: regexp.MustCompile(AcademicYearPattern),
	Digits:       regexp.MustCompile(DigitsPattern),
}

// IsAcademicYear reports whether s is "YYYY/YYYY" where the second year follows the first.
func IsAcademicYear(s string) bool {
	m := CompiledPatterns.AcademicYear.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	return second == first+1
}

// IsDate reports whether s is a calendar date formatted YYYY-MM-DD.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsAllDigits reports whether s, ignoring surrounding spaces, consists of digits only.
func IsAllDigits(s string) bool {
	return CompiledPatterns.Digits.MatchString(strings.TrimSpace(s))
}

// Register adds the custom tags notnumeric, birthdate and academicyear to v
// and reports field names by their json tag.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"notnumeric": func(fl validator.FieldLevel) bool {
			return !IsAllDigits(fl.Field().String())
		},
		"birthdate": func(fl validator.FieldLevel) bool {
			return IsDate(fl.Field().String())
		},
		"academicyear": func(fl validator.FieldLevel) bool {
			return IsAcademicYear(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
