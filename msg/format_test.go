package msg

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/termstr"
)

func TestFormat_Specifiers(t *testing.T) {
	var cfg *Config // nil config uses defaults throughout

	render := func(phrase string, alt int, args ...any) string {
		s := cfg.FormatString(0, phrase, alt, args...)
		return s.WrapString(0, false)
	}

	t.Run("boolean", func(t *testing.T) {
		assert.Equal(t, "got true here", render("got %b here", -1, true))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "got abc here", render("got %s here", -1, "abc"))
	})

	t.Run("number from int and float", func(t *testing.T) {
		assert.Equal(t, "1 to 2.5", render("%n to %n", -1, 1, 2.5))
	})

	t.Run("regex", func(t *testing.T) {
		re := regexp.MustCompile(`\d+`)
		assert.Equal(t, `pattern \d+`, render("pattern %r", -1, re))
	})

	t.Run("option name", func(t *testing.T) {
		assert.Equal(t, "option --flag", render("option %o", -1, "--flag"))
	})

	t.Run("typed value", func(t *testing.T) {
		assert.Equal(t, "value 'abc'", render("value %v", -1, cty.StringVal("abc")))
	})

	t.Run("nested string", func(t *testing.T) {
		nested := termstr.New(0).Word("one").Close(",").Word("two")
		assert.Equal(t, "list: one, two", render("list: %t", -1, nested))
	})

	t.Run("exhausted arguments render nothing", func(t *testing.T) {
		assert.Equal(t, "got here", render("got %s here", -1))
	})

	t.Run("mismatched argument renders nothing and is consumed", func(t *testing.T) {
		assert.Equal(t, "a b", render("a %b %s b", -1, "not-bool", "kept"))
	})
}

func TestFormat_Alternatives(t *testing.T) {
	var cfg *Config
	phrase := "Accepts (multiple|at least %n|at most %n|between %n and %n) parameters."

	render := func(alt int, args ...any) string {
		return cfg.FormatString(0, phrase, alt, args...).WrapString(0, false)
	}

	assert.Equal(t, "Accepts multiple parameters.", render(0))
	assert.Equal(t, "Accepts at least 2 parameters.", render(1, 2))
	assert.Equal(t, "Accepts at most 3 parameters.", render(2, 3))
	assert.Equal(t, "Accepts between 1 and 3 parameters.", render(3, 1, 3))

	t.Run("index clamps to the last branch", func(t *testing.T) {
		assert.Equal(t, "Accepts between 1 and 3 parameters.", render(9, 1, 3))
	})

	t.Run("negative index keeps the group literal", func(t *testing.T) {
		got := cfg.FormatString(0, "(a|b)", -1).WrapString(0, false)
		assert.Equal(t, "(a|b)", got)
	})

	t.Run("parentheses without a pipe are literal", func(t *testing.T) {
		got := cfg.FormatString(0, "see (docs) for %s", 0, "more").WrapString(0, false)
		assert.Equal(t, "see (docs) for more", got)
	})
}

func TestFormatValue(t *testing.T) {
	var cfg *Config

	render := func(v cty.Value) string {
		s := termstr.New(0)
		cfg.FormatValue(s, v)
		return s.WrapString(0, false)
	}

	assert.Equal(t, "true", render(cty.True))
	assert.Equal(t, "'hi'", render(cty.StringVal("hi")))
	assert.Equal(t, "42", render(cty.NumberIntVal(42)))
	assert.Equal(t, "1.5", render(cty.NumberFloatVal(1.5)))
	assert.Equal(t, "", render(cty.NilVal))
	assert.Equal(t, "", render(cty.NullVal(cty.String)))

	t.Run("lists are bracketed and comma separated", func(t *testing.T) {
		v := cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})
		assert.Equal(t, "['a', 'b']", render(v))
	})

	t.Run("styled output colors each piece", func(t *testing.T) {
		s := termstr.New(0)
		cfg.FormatValue(s, cty.NumberIntVal(7))
		assert.Equal(t, "\x1b[33m7\x1b[0m", s.WrapString(0, true))
	})
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "3", FormatNumber(cty.NumberIntVal(3)))
	assert.Equal(t, "-1", FormatNumber(cty.NumberIntVal(-1)))
	assert.Equal(t, "0.25", FormatNumber(cty.NumberFloatVal(0.25)))
}

func TestNewError(t *testing.T) {
	var cfg *Config

	t.Run("uses the default phrase for the code", func(t *testing.T) {
		err := cfg.NewError(ErrInvalidNumericRange, -1, "--num", 5, 5)
		require.NotNil(t, err)
		assert.Equal(t, ErrInvalidNumericRange, err.Code)
		assert.Equal(t, "Option --num has invalid numeric range [5, 5].", err.Error())
	})

	t.Run("phrase overrides take precedence", func(t *testing.T) {
		over := &Config{Phrases: map[Code]string{ErrEmptyEnumeration: "bad enum on %o"}}
		err := over.NewError(ErrEmptyEnumeration, -1, "--mode")
		assert.Equal(t, "bad enum on --mode", err.Error())
	})

	t.Run("warning codes are classified", func(t *testing.T) {
		assert.True(t, WarnTooSimilarNames.IsWarning())
		assert.True(t, WarnVariadicClusterLetter.IsWarning())
		assert.False(t, ErrInvalidValueType.IsWarning())
	})
}

func TestMessageWrap(t *testing.T) {
	// The column threads across strings of one message, so the second
	// string's indent pads from where the first one stopped.
	first := termstr.New(0).Word("head")
	second := termstr.New(6).Word("tail")
	m := Message{first, second}
	assert.Equal(t, "head  tail", m.String())
}
