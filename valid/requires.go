package valid

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
)

// validateRequires descends a requirement expression. Leaf references are
// checked against the registry; connective nodes recurse without extra
// checks.
func (w *walker) validateRequires(reg *Registry, opt *option.Option, req option.Requires) *msg.Error {
	switch node := req.(type) {
	case nil:
		return nil
	case option.RequiresKey:
		return w.validateReference(reg, opt, string(node), cty.NilVal, false)
	case option.RequiresVal:
		return w.validateReference(reg, opt, node.Key, node.Value, true)
	case option.RequiresNot:
		return w.validateRequires(reg, opt, node.Expr)
	case option.RequiresAll:
		for _, sub := range node {
			if err := w.validateRequires(reg, opt, sub); err != nil {
				return err
			}
		}
	case option.RequiresOne:
		for _, sub := range node {
			if err := w.validateRequires(reg, opt, sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateReference checks one leaf of a requirement: no self-reference,
// the key must exist, a supplied value must suit the referenced option,
// and demanding the absence of an always-present option is contradictory.
func (w *walker) validateReference(reg *Registry, opt *option.Option, key string, value cty.Value, hasValue bool) *msg.Error {
	if key == opt.Key {
		return w.cfg.NewError(msg.ErrInvalidSelfRequirement, 0, w.prefix+opt.Key)
	}
	ref, ok := reg.Keys[key]
	if !ok {
		return w.cfg.NewError(msg.ErrUnknownRequiredOption, 0, w.prefix+key)
	}
	if !hasValue {
		return nil
	}
	if value == cty.NilVal {
		// "Must be absent" contradicts an option that is always present.
		if ref.Required || ref.HasDefault() {
			return w.cfg.NewError(msg.ErrInvalidRequiredValue, 0, w.prefix+key)
		}
		return nil
	}
	if !ref.Kind.HasValue() {
		return w.cfg.NewError(msg.ErrInvalidRequiredOption, 0, w.prefix+key)
	}
	if _, err := Normalize(w.cfg, ref, w.prefix+key, value); err != nil {
		return err.(*msg.Error)
	}
	return nil
}
