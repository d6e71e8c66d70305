package help

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/option"
	"github.com/trulysimple/tsargp/termstr"
)

// formatRequires renders a requirement expression with the configured
// connective words. Negation is pushed down the tree: "not (a and b)"
// renders as "no a or no b" never materializing the "not" over a group.
// A child expression is parenthesized only when it has more than one
// child of its own.
func (f *Formatter) formatRequires(dst *termstr.String, req option.Requires, negate bool) {
	words := f.mcfg.Words()
	sty := f.mcfg.ValueStyle()
	switch node := req.(type) {
	case option.RequiresKey:
		if negate {
			dst.Word(words.No)
		}
		dst.Styled(sty.Option, f.refName(string(node)))
	case option.RequiresVal:
		if node.Value == cty.NilVal {
			// Absence requirement; negation makes it a presence one.
			if !negate {
				dst.Word(words.No)
			}
			dst.Styled(sty.Option, f.refName(node.Key))
			return
		}
		dst.Styled(sty.Option, f.refName(node.Key))
		if negate {
			dst.Word(words.NotEquals)
		} else {
			dst.Word(words.Equals)
		}
		f.mcfg.FormatValue(dst, node.Value)
	case option.RequiresNot:
		f.formatRequires(dst, node.Expr, !negate)
	case option.RequiresAll:
		f.formatGroup(dst, node, negate, negate)
	case option.RequiresOne:
		f.formatGroup(dst, node, negate, !negate)
	}
}

// formatGroup joins sub-expressions with "or" when useOr is set, "and"
// otherwise; negation has already flipped the connective by De Morgan.
func (f *Formatter) formatGroup(dst *termstr.String, exprs []option.Requires, negate, useOr bool) {
	words := f.mcfg.Words()
	conn := words.And
	if useOr {
		conn = words.Or
	}
	for i, sub := range exprs {
		if i > 0 {
			dst.Word(conn)
		}
		if childCount(sub) > 1 {
			dst.Open("(")
			f.formatRequires(dst, sub, negate)
			dst.Close(")")
		} else {
			f.formatRequires(dst, sub, negate)
		}
	}
}

// childCount reports how many direct children an expression has; leaves
// count as one.
func childCount(req option.Requires) int {
	switch node := req.(type) {
	case option.RequiresAll:
		return len(node)
	case option.RequiresOne:
		return len(node)
	case option.RequiresNot:
		return childCount(node.Expr)
	}
	return 1
}

// refName resolves a requirement key to the referenced option's preferred
// name, falling back to the key itself.
func (f *Formatter) refName(key string) string {
	if opt := f.set.Find(key); opt != nil {
		return opt.PreferredName()
	}
	return key
}
