package msg

// Code identifies one kind of diagnostic. Fatal schema errors abort
// validation; warning codes accumulate and are returned alongside a
// successful result.
type Code int

const (
	// ErrInvalidOptionName: a declared name contains whitespace or '='.
	ErrInvalidOptionName Code = iota
	// ErrOptionWithNoName: a non-positional option declares no usable name.
	ErrOptionWithNoName
	// ErrDuplicateOptionName: two options share a declared name.
	ErrDuplicateOptionName
	// ErrDuplicatePositionalOption: more than one option is positional.
	ErrDuplicatePositionalOption
	// ErrDuplicateClusterLetter: two options share a cluster letter.
	ErrDuplicateClusterLetter
	// ErrEmptyEnumeration: an enumeration constraint has no members.
	ErrEmptyEnumeration
	// ErrDuplicateEnumValue: an enumeration repeats a member.
	ErrDuplicateEnumValue
	// ErrInvalidNumericRange: a range does not satisfy min < max.
	ErrInvalidNumericRange
	// ErrInvalidParamCount: a parameter count does not satisfy 0 <= min < max.
	ErrInvalidParamCount
	// ErrEnumViolation: a value is not one of the enumerated members.
	ErrEnumViolation
	// ErrRegexViolation: a value does not match the option's pattern.
	ErrRegexViolation
	// ErrRangeViolation: a value falls outside the option's range.
	ErrRangeViolation
	// ErrLimitViolation: an array value exceeds the element-count limit.
	ErrLimitViolation
	// ErrInvalidValueType: a value cannot convert to the option's type.
	ErrInvalidValueType
	// ErrInvalidSelfRequirement: an option requires itself.
	ErrInvalidSelfRequirement
	// ErrUnknownRequiredOption: a requirement references an unknown key.
	ErrUnknownRequiredOption
	// ErrInvalidRequiredOption: a requirement supplies a value for a
	// niladic option.
	ErrInvalidRequiredOption
	// ErrInvalidRequiredValue: a requirement demands the absence of an
	// option that is always present.
	ErrInvalidRequiredValue

	// WarnTooSimilarNames: declared names in one slot are suspiciously
	// close to each other.
	WarnTooSimilarNames
	// WarnMixedNamingConvention: names in one slot mix naming styles.
	WarnMixedNamingConvention
	// WarnVariadicClusterLetter: a variadic option declares cluster
	// letters, which only work in the last position of a cluster.
	WarnVariadicClusterLetter
)

// IsWarning reports whether the code is non-fatal.
func (c Code) IsWarning() bool { return c >= WarnTooSimilarNames }

// defaultPhrases holds the built-in phrase template for every code.
var defaultPhrases = map[Code]string{
	ErrInvalidOptionName:         "Option %s has invalid name %o.",
	ErrOptionWithNoName:          "Non-positional option %s has no name.",
	ErrDuplicateOptionName:       "Option %s has duplicate name %o.",
	ErrDuplicatePositionalOption: "Duplicate positional option %s: option %s is also positional.",
	ErrDuplicateClusterLetter:    "Option %s has duplicate cluster letter %o.",
	ErrEmptyEnumeration:          "Option %s has zero enumerated values.",
	ErrDuplicateEnumValue:        "Option %s has duplicate enumerated value %v.",
	ErrInvalidNumericRange:       "Option %s has invalid numeric range [%n, %n].",
	ErrInvalidParamCount:         "Option %s has invalid parameter count [%n, %n].",
	ErrEnumViolation:             "Invalid parameter to %o: %v. Value must be one of: %t.",
	ErrRegexViolation:            "Invalid parameter to %o: %v. Value must match the regex %r.",
	ErrRangeViolation:            "Invalid parameter to %o: %v. Value must be in the range [%n, %n].",
	ErrLimitViolation:            "Option %o has too many values: %n. Should have at most %n.",
	ErrInvalidValueType:          "Invalid parameter to %o: %v. Value must be of type %s.",
	ErrInvalidSelfRequirement:    "Option %s requires itself.",
	ErrUnknownRequiredOption:     "Unknown option %s in requirement.",
	ErrInvalidRequiredOption:     "Invalid option %s in requirement: it cannot carry a value.",
	ErrInvalidRequiredValue:      "Invalid requirement: option %s is always present.",

	WarnTooSimilarNames:       "Option name %o is very similar to: %t.",
	WarnMixedNamingConvention: "Name slot %n has mixed naming conventions: %t.",
	WarnVariadicClusterLetter: "Variadic option %s may only appear at the end of a cluster.",
}
