package option

import (
	"regexp"

	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/styles"
)

// Kind discriminates the option variants.
type Kind uint8

const (
	// Help is a niladic control option that triggers help output.
	Help Kind = iota
	// Version is a niladic control option that reports the version.
	Version
	// Flag is a niladic option that is either present or absent.
	Flag
	// Boolean accepts a single boolean parameter.
	Boolean
	// String accepts a single string parameter.
	String
	// Number accepts a single numeric parameter.
	Number
	// Strings accepts a list of string parameters.
	Strings
	// Numbers accepts a list of numeric parameters.
	Numbers
	// Command nests another option set behind a subcommand name.
	Command
)

func (k Kind) String() string {
	switch k {
	case Help:
		return "help"
	case Version:
		return "version"
	case Flag:
		return "flag"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Number:
		return "number"
	case Strings:
		return "strings"
	case Numbers:
		return "numbers"
	case Command:
		return "command"
	}
	return "unknown"
}

// HasValue reports whether the kind carries a parameter value. Niladic
// control options and subcommands do not.
func (k Kind) HasValue() bool {
	switch k {
	case Boolean, String, Number, Strings, Numbers:
		return true
	}
	return false
}

// IsArray reports whether the kind accepts multiple values.
func (k Kind) IsArray() bool { return k == Strings || k == Numbers }

// DataType is the cty type of the kind's value, or cty.NilType for
// niladic kinds.
func (k Kind) DataType() cty.Type {
	switch k {
	case Boolean:
		return cty.Bool
	case String:
		return cty.String
	case Number:
		return cty.Number
	case Strings:
		return cty.List(cty.String)
	case Numbers:
		return cty.List(cty.Number)
	}
	return cty.NilType
}

// ElemType is the cty type of one element for array kinds, or the value
// type for scalar kinds.
func (k Kind) ElemType() cty.Type {
	switch k {
	case Strings:
		return cty.String
	case Numbers:
		return cty.Number
	}
	return k.DataType()
}

// CaseMode selects the case normalization applied to string values.
type CaseMode uint8

const (
	CaseNone CaseMode = iota
	CaseLower
	CaseUpper
)

// RoundMode selects the rounding applied to numeric values.
type RoundMode uint8

const (
	RoundNone RoundMode = iota
	RoundTrunc
	RoundFloor
	RoundCeil
	RoundNearest
)

// Count bounds the number of parameters an option accepts. A negative
// Max means unbounded.
type Count struct {
	Min int
	Max int
}

// Range bounds a numeric value inclusively.
type Range struct {
	Min float64
	Max float64
}

// Styling overrides the styles used when rendering one option.
type Styling struct {
	Names styles.Style
	Descr styles.Style
}

// Option is the static descriptor of one command-line option. Only the
// fields that make sense for the option's Kind are consulted; the rest
// stay at their zero values.
type Option struct {
	Kind Kind

	// Key identifies the option inside its set. It doubles as the
	// reference target of requirement expressions.
	Key string

	// Names holds the declared names by slot; an empty string marks an
	// absent slot so that name columns stay aligned across options.
	Names []string

	// NegationNames are extra names that negate a flag.
	NegationNames []string

	Synopsis   string
	Group      string
	Hidden     bool
	Deprecated string
	Link       string
	EnvVar     string
	Styles     *Styling

	// ClusterLetters are single-character aliases usable behind one dash.
	ClusterLetters string

	// Positional marks the option that receives unnamed arguments. The
	// optional marker is a sentinel token (e.g. "--") that forces the
	// remaining arguments to be positional.
	Positional       bool
	PositionalMarker string

	Required   bool
	Requires   Requires
	RequiredIf Requires

	// Default, Example and Fallback are statically declared values and
	// must satisfy the option's own constraints. cty.NilVal means absent.
	Default  cty.Value
	Example  cty.Value
	Fallback cty.Value

	// DefaultFunc computes the default lazily. It is exempt from static
	// validation.
	DefaultFunc func() cty.Value

	ParamCount *Count
	Enums      []cty.Value
	Regex      *regexp.Regexp
	Range      *Range

	Trim  bool
	Case  CaseMode
	Round RoundMode

	// Array-kind fields.
	Unique    bool
	Limit     int
	Append    bool
	Separator string

	// Subcommands is the nested option set of a Command option.
	Subcommands *Set
}

// PreferredName is the first declared name, falling back to the key when
// the option has none (e.g. a pure positional).
func (o *Option) PreferredName() string {
	for _, n := range o.Names {
		if n != "" {
			return n
		}
	}
	return o.Key
}

// HasDefault reports whether the option supplies a value when absent.
func (o *Option) HasDefault() bool {
	return o.Default != cty.NilVal || o.DefaultFunc != nil
}

// IsVariadic reports whether the option may consume a variable number of
// command-line parameters: array kinds reading from separate arguments,
// or an explicit parameter count with differing bounds.
func (o *Option) IsVariadic() bool {
	if o.ParamCount != nil {
		return o.ParamCount.Max < 0 || o.ParamCount.Min != o.ParamCount.Max
	}
	return o.Kind.IsArray() && o.Separator == ""
}

// Set is an ordered collection of options. Order is declaration order and
// is preserved through validation and help rendering. Sets are compared
// by identity when guarding against recursion through shared subcommand
// trees, so nested sets should be shared as pointers.
type Set struct {
	Options []*Option
}

// NewSet builds a set from options in declaration order.
func NewSet(opts ...*Option) *Set {
	return &Set{Options: opts}
}

// Find returns the option with the given key, or nil.
func (s *Set) Find(key string) *Option {
	for _, o := range s.Options {
		if o.Key == key {
			return o
		}
	}
	return nil
}
