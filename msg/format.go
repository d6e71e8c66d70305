package msg

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/termstr"
)

// Format renders a phrase template into dst. Specifiers consume args in
// order: %b boolean, %s string, %n number, %r regex, %o option name,
// %v typed value, %u URL, %t nested terminal string. Parenthesized
// "(alt1|alt2|...)" groups are resolved to the alt-th branch before
// splitting. Exhausted or mismatched arguments render as nothing; the
// operation is total.
func (c *Config) Format(dst *termstr.String, phrase string, alt int, args ...any) {
	sty := c.ValueStyle()
	next := func() any {
		if len(args) == 0 {
			return nil
		}
		a := args[0]
		args = args[1:]
		return a
	}
	dst.Split(selectAlternative(phrase, alt), func(s *termstr.String, spec byte) {
		switch spec {
		case 'b':
			if b, ok := next().(bool); ok {
				s.Styled(sty.Boolean, strconv.FormatBool(b))
			}
		case 's':
			if v, ok := next().(string); ok {
				s.Styled(sty.String, v)
			}
		case 'n':
			if n, ok := numberArg(next()); ok {
				s.Styled(sty.Number, n)
			}
		case 'r':
			if re, ok := next().(*regexp.Regexp); ok {
				s.Styled(sty.Regex, re.String())
			}
		case 'o':
			if v, ok := next().(string); ok {
				s.Styled(sty.Option, v)
			}
		case 'v':
			if v, ok := next().(cty.Value); ok {
				c.FormatValue(s, v)
			}
		case 'u':
			if v, ok := next().(string); ok {
				s.Styled(sty.URL, v)
			}
		case 't':
			if t, ok := next().(*termstr.String); ok {
				s.Append(t)
			}
		}
	})
}

// FormatString renders a phrase into a fresh terminal string at the given
// indentation.
func (c *Config) FormatString(indent int, phrase string, alt int, args ...any) *termstr.String {
	s := termstr.New(indent)
	c.Format(s, phrase, alt, args...)
	return s
}

// FormatValue appends a typed value: booleans and numbers bare, strings
// single-quoted, collections bracketed with comma-separated members. Each
// piece carries the style configured for its kind.
func (c *Config) FormatValue(dst *termstr.String, v cty.Value) {
	sty := c.ValueStyle()
	switch {
	case v == cty.NilVal || v.IsNull():
		return
	case !v.IsKnown():
		return
	case v.Type() == cty.Bool:
		dst.Styled(sty.Boolean, strconv.FormatBool(v.True()))
	case v.Type() == cty.String:
		dst.Styled(sty.String, "'"+v.AsString()+"'")
	case v.Type() == cty.Number:
		dst.Styled(sty.Number, FormatNumber(v))
	case v.Type().IsListType() || v.Type().IsSetType() || v.Type().IsTupleType():
		dst.Open("[")
		first := true
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			if !first {
				dst.Close(",")
			}
			c.FormatValue(dst, ev)
			first = false
		}
		dst.Close("]")
	default:
		dst.Styled(sty.Value, v.GoString())
	}
}

// FormatNumber renders a cty number without a type suffix, preferring
// integer form when exact.
func FormatNumber(v cty.Value) string {
	bf := v.AsBigFloat()
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return strconv.FormatInt(i, 10)
		}
	}
	f, _ := bf.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// numberArg normalizes the numeric argument kinds a phrase may receive.
func numberArg(a any) (string, bool) {
	switch n := a.(type) {
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), true
	case cty.Value:
		if n.Type() == cty.Number && !n.IsNull() {
			return FormatNumber(n), true
		}
	}
	return "", false
}

// selectAlternative resolves "(alt1|alt2|...)" groups to the branch at
// the given index, clamped to the available branches. Parentheses without
// a top-level '|' are literal text.
func selectAlternative(phrase string, alt int) string {
	if alt < 0 || !strings.ContainsRune(phrase, '(') {
		return phrase
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(phrase, '(')
		if open < 0 {
			b.WriteString(phrase)
			return b.String()
		}
		depth := 0
		close := -1
		for i := open; i < len(phrase); i++ {
			switch phrase[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					close = i
				}
			}
			if close >= 0 {
				break
			}
		}
		if close < 0 {
			b.WriteString(phrase)
			return b.String()
		}
		group := phrase[open+1 : close]
		branches := splitBranches(group)
		if len(branches) < 2 {
			// not an alternative group, keep it literally
			b.WriteString(phrase[:close+1])
		} else {
			b.WriteString(phrase[:open])
			i := alt
			if i >= len(branches) {
				i = len(branches) - 1
			}
			b.WriteString(branches[i])
		}
		phrase = phrase[close+1:]
	}
}

// splitBranches splits on '|' at parenthesis depth zero.
func splitBranches(group string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(group); i++ {
		switch group[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				out = append(out, group[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, group[start:])
	return out
}
