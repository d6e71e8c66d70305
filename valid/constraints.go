package valid

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
)

// validateConstraints checks one option's self-consistency: a well-formed
// enumeration, numeric range and parameter count, and statically declared
// values that pass the parse-time normalization path. Lazily computed
// defaults are exempt from the static check.
func (w *walker) validateConstraints(opt *option.Option) *msg.Error {
	if !opt.Kind.HasValue() {
		return nil
	}
	key := w.prefix + opt.Key

	if opt.Enums != nil {
		if len(opt.Enums) == 0 {
			return w.cfg.NewError(msg.ErrEmptyEnumeration, 0, key)
		}
		elemType := opt.Kind.ElemType()
		for i, e := range opt.Enums {
			if _, err := convert.Convert(e, elemType); err != nil {
				return w.cfg.NewError(msg.ErrInvalidValueType, 0, key, e, elemType.FriendlyName())
			}
			if containsValue(opt.Enums[:i], e) {
				return w.cfg.NewError(msg.ErrDuplicateEnumValue, 0, key, e)
			}
		}
	}

	// IEEE comparison: a NaN bound fails min < max and is rejected.
	if r := opt.Range; r != nil && !(r.Min < r.Max) {
		return w.cfg.NewError(msg.ErrInvalidNumericRange, 0, key, r.Min, r.Max)
	}

	if c := opt.ParamCount; c != nil {
		if c.Min < 0 || (c.Max >= 0 && c.Min >= c.Max) {
			return w.cfg.NewError(msg.ErrInvalidParamCount, 0, key, c.Min, c.Max)
		}
	}

	for _, value := range []cty.Value{opt.Default, opt.Example, opt.Fallback} {
		if value == cty.NilVal {
			continue
		}
		if _, err := Normalize(w.cfg, opt, key, value); err != nil {
			return err.(*msg.Error)
		}
	}
	return nil
}
