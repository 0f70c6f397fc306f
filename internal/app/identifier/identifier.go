// Package identifier allocates and parses student identifiers of the form
// YYYY-PP-NNNN: enrollment year, program code and a sequence scoped to the
// (year, program) pair.
package identifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/akademik/internal/pkg/apperrors"
)

const (
	MinYear     = 2000
	MaxYear     = 2100
	MaxSequence = 9999

	yearLen     = 4
	codeLen     = 2
	sequenceLen = 4
)

// StudentID is a parsed student identifier.
type StudentID struct {
	Year        int
	ProgramCode string
	Sequence    int
}

// String formats the identifier as YYYY-PP-NNNN.
func (id StudentID) String() string {
	return fmt.Sprintf("%04d-%s-%04d", id.Year, id.ProgramCode, id.Sequence)
}

// ScopePrefix returns the identifier prefix shared by every student of the
// (year, program code) scope, e.g. "2024-10-".
func ScopePrefix(year int, programCode string) string {
	return fmt.Sprintf("%04d-%s-", year, programCode)
}

// ValidateFormat reports whether s has three dash separated digit groups of
// length 4, 2 and 4.
func ValidateFormat(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return false
	}
	return len(parts[0]) == yearLen && isDigits(parts[0]) &&
		len(parts[1]) == codeLen && isDigits(parts[1]) &&
		len(parts[2]) == sequenceLen && isDigits(parts[2])
}

// Parse splits s into its components.
func Parse(s string) (StudentID, error) {
	if !ValidateFormat(s) {
		return StudentID{}, apperrors.NewCustomError(apperrors.ErrMalformedIdentifier,
			fmt.Sprintf("invalid student identifier %q, expected format YYYY-PP-NNNN", s)).WithField("id")
	}

	parts := strings.Split(s, "-")
	year, _ := strconv.Atoi(parts[0])
	seq, _ := strconv.Atoi(parts[2])
	return StudentID{Year: year, ProgramCode: parts[1], Sequence: seq}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
