package valid

import (
	"math"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
	"github.com/trulysimple/tsargp/termstr"
)

// Normalize converts a raw value to the option's data type and applies
// its normalization and constraints: strings are trimmed and case-folded,
// numbers rounded and range-checked, enumerations and patterns enforced,
// and array values deduplicated and limit-checked. The name identifies
// the option in diagnostics (a declared name at parse time, the key for
// static values). The same path validates declared defaults and examples
// and parses command-line parameters, so both agree on every rule.
func Normalize(cfg *msg.Config, opt *option.Option, name string, value cty.Value) (cty.Value, error) {
	if !opt.Kind.HasValue() || value == cty.NilVal {
		return value, nil
	}
	if !opt.Kind.IsArray() {
		return normalizeElem(cfg, opt, name, value)
	}

	elems := elementsOf(value)
	out := make([]cty.Value, 0, len(elems))
	for _, e := range elems {
		n, err := normalizeElem(cfg, opt, name, e)
		if err != nil {
			return cty.NilVal, err
		}
		if opt.Unique && containsValue(out, n) {
			continue
		}
		out = append(out, n)
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		return cty.NilVal, cfg.NewError(msg.ErrLimitViolation, 0, name, len(out), opt.Limit)
	}
	if len(out) == 0 {
		return cty.ListValEmpty(opt.Kind.ElemType()), nil
	}
	return cty.ListVal(out), nil
}

// elementsOf flattens a collection value into its elements, converting a
// stray scalar into a one-element list.
func elementsOf(value cty.Value) []cty.Value {
	t := value.Type()
	if t.IsListType() || t.IsSetType() || t.IsTupleType() {
		if value.IsNull() {
			return nil
		}
		var elems []cty.Value
		for it := value.ElementIterator(); it.Next(); {
			_, e := it.Element()
			elems = append(elems, e)
		}
		return elems
	}
	return []cty.Value{value}
}

// normalizeElem handles one scalar value against the option's element
// type and constraints.
func normalizeElem(cfg *msg.Config, opt *option.Option, name string, value cty.Value) (cty.Value, error) {
	elemType := opt.Kind.ElemType()
	conv, err := convert.Convert(value, elemType)
	if err != nil || conv.IsNull() {
		return cty.NilVal, cfg.NewError(msg.ErrInvalidValueType, 0,
			name, value, elemType.FriendlyName())
	}

	switch elemType {
	case cty.String:
		s := conv.AsString()
		if opt.Trim {
			s = strings.TrimSpace(s)
		}
		switch opt.Case {
		case option.CaseLower:
			s = strings.ToLower(s)
		case option.CaseUpper:
			s = strings.ToUpper(s)
		}
		conv = cty.StringVal(s)
	case cty.Number:
		conv = roundNumber(conv, opt.Round)
	}

	if len(opt.Enums) > 0 && !containsValue(opt.Enums, conv) {
		return cty.NilVal, cfg.NewError(msg.ErrEnumViolation, 0,
			name, conv, valueList(cfg, opt.Enums))
	}
	if opt.Regex != nil && elemType == cty.String && !opt.Regex.MatchString(conv.AsString()) {
		return cty.NilVal, cfg.NewError(msg.ErrRegexViolation, 0, name, conv, opt.Regex)
	}
	if opt.Range != nil && elemType == cty.Number {
		f, _ := conv.AsBigFloat().Float64()
		if f < opt.Range.Min || f > opt.Range.Max {
			return cty.NilVal, cfg.NewError(msg.ErrRangeViolation, 0,
				name, conv, opt.Range.Min, opt.Range.Max)
		}
	}
	return conv, nil
}

func roundNumber(v cty.Value, mode option.RoundMode) cty.Value {
	if mode == option.RoundNone {
		return v
	}
	f, _ := v.AsBigFloat().Float64()
	switch mode {
	case option.RoundTrunc:
		f = math.Trunc(f)
	case option.RoundFloor:
		f = math.Floor(f)
	case option.RoundCeil:
		f = math.Ceil(f)
	case option.RoundNearest:
		f = math.Round(f)
	}
	return cty.NumberFloatVal(f)
}

// containsValue tests membership by typed equality, so 1 and 1.0 compare
// equal.
func containsValue(values []cty.Value, v cty.Value) bool {
	for _, e := range values {
		if eq := v.Equals(e); eq.IsKnown() && eq.True() {
			return true
		}
	}
	return false
}

// valueList renders values as a comma-separated nested string for %t
// substitution.
func valueList(cfg *msg.Config, values []cty.Value) *termstr.String {
	s := termstr.New(0)
	for i, v := range values {
		if i > 0 {
			s.Close(",")
		}
		cfg.FormatValue(s, v)
	}
	return s
}
