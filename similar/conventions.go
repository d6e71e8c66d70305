package similar

import (
	"strings"
	"unicode"
)

// Family identifies one axis of a naming convention.
type Family int

const (
	// FamilyCase classifies the letter case of a name.
	FamilyCase Family = iota
	// FamilyPrefix classifies the leading dashes of a name.
	FamilyPrefix
	// FamilyDelimiter classifies how words inside a name are separated.
	FamilyDelimiter
)

func (f Family) String() string {
	switch f {
	case FamilyCase:
		return "case"
	case FamilyPrefix:
		return "dash prefix"
	case FamilyDelimiter:
		return "word delimiter"
	}
	return "unknown"
}

// Conventions maps each family to the variant a name exhibits. A family
// with no evidence in the name (e.g. a single-word name has no word
// delimiter) is omitted, so it never counts as a mismatch.
func Conventions(name string) map[Family]string {
	out := make(map[Family]string, 3)

	bare := strings.TrimLeft(name, "-")
	switch len(name) - len(bare) {
	case 0:
		out[FamilyPrefix] = "no dash"
	case 1:
		out[FamilyPrefix] = "single dash"
	case 2:
		out[FamilyPrefix] = "double dash"
	default:
		out[FamilyPrefix] = "multiple dashes"
	}

	hasLower, hasUpper := false, false
	hasDash, hasUnderscore, hasCamel := false, false, false
	prevLower := false
	for _, r := range bare {
		switch {
		case unicode.IsLower(r):
			hasLower = true
			prevLower = true
			continue
		case unicode.IsUpper(r):
			hasUpper = true
			if prevLower {
				hasCamel = true
			}
		case r == '-':
			hasDash = true
		case r == '_':
			hasUnderscore = true
		}
		prevLower = false
	}

	switch {
	case hasLower && hasUpper:
		out[FamilyCase] = "mixed case"
	case hasUpper:
		out[FamilyCase] = "upper case"
	case hasLower:
		out[FamilyCase] = "lower case"
	}

	switch {
	case hasDash:
		out[FamilyDelimiter] = "dash"
	case hasUnderscore:
		out[FamilyDelimiter] = "underscore"
	case hasCamel:
		out[FamilyDelimiter] = "camel case"
	}

	return out
}
