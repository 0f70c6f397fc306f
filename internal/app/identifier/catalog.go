package identifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yigit/akademik/internal/pkg/apperrors"
)

// Program is one entry of the program catalog.
type Program struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Catalog is the immutable program name to code table used for allocation.
type Catalog struct {
	codes    map[string]string
	programs []Program
}

// Normalize lower-cases name, trims it and replaces spaces with underscores.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// NewCatalog builds a catalog from a name to code mapping. Names are normalized;
// codes must be two ASCII digits and unique.
func NewCatalog(programs map[string]string) (*Catalog, error) {
	if len(programs) == 0 {
		return nil, fmt.Errorf("program catalog is empty")
	}

	c := &Catalog{codes: make(map[string]string, len(programs))}
	byCode := make(map[string]string, len(programs))
	for name, code := range programs {
		key := Normalize(name)
		if key == "" {
			return nil, fmt.Errorf("program name must not be empty")
		}
		if len(code) != 2 || !isDigits(code) {
			return nil, fmt.Errorf("program %q: code %q must be two digits", key, code)
		}
		if _, dup := c.codes[key]; dup {
			return nil, fmt.Errorf("program %q declared twice", key)
		}
		if other, dup := byCode[code]; dup {
			return nil, fmt.Errorf("programs %q and %q share code %s", other, key, code)
		}
		c.codes[key] = code
		byCode[code] = key
		c.programs = append(c.programs, Program{Name: key, Code: code})
	}

	sort.Slice(c.programs, func(i, j int) bool { return c.programs[i].Code < c.programs[j].Code })
	return c, nil
}

// Resolve returns the two-digit code for programName.
func (c *Catalog) Resolve(programName string) (string, error) {
	_, code, err := c.Canonical(programName)
	return code, err
}

// Canonical returns the normalized catalog name and the code for programName.
func (c *Catalog) Canonical(programName string) (string, string, error) {
	key := Normalize(programName)
	code, ok := c.codes[key]
	if !ok {
		return "", "", apperrors.NewCustomError(apperrors.ErrUnknownProgram,
			fmt.Sprintf("unknown program %q, valid programs: %s", programName, strings.Join(c.Names(), ", "))).
			WithField("program")
	}
	return key, code, nil
}

// Names returns the normalized program names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.programs))
	for _, p := range c.programs {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Programs returns the catalog entries ordered by code.
func (c *Catalog) Programs() []Program {
	out := make([]Program, len(c.programs))
	copy(out, c.programs)
	return out
}
