package valid

import (
	"strings"

	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
	"github.com/trulysimple/tsargp/similar"
)

// Registry indexes a validated option set: every declared name (negation
// names and a positional marker included) and every cluster letter mapped
// to its owning option, plus the positional option if any. The external
// argument parser consumes it for lookup and suggestions.
type Registry struct {
	Set        *option.Set
	Keys       map[string]*option.Option
	Names      map[string]*option.Option
	Letters    map[rune]*option.Option
	Positional *option.Option
}

// FindByName resolves a declared name to its option, or nil.
func (r *Registry) FindByName(name string) *option.Option {
	return r.Names[name]
}

// FindByLetter resolves a cluster letter to its option, or nil.
func (r *Registry) FindByLetter(letter rune) *option.Option {
	return r.Letters[letter]
}

// SuggestNames returns the declared names most similar to an unresolved
// name, best first, for "did you mean" diagnostics. Threshold zero uses
// the default.
func (r *Registry) SuggestNames(unknown string, threshold float64) []string {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	names := make([]string, 0, len(r.Names))
	for _, o := range r.Set.Options {
		for _, n := range o.Names {
			if n != "" {
				names = append(names, n)
			}
		}
		names = append(names, o.NegationNames...)
	}
	return similar.Closest(unknown, names, threshold)
}

// buildRegistry walks the set in declaration order, registering names and
// cluster letters and failing fast on the first structural error.
func (w *walker) buildRegistry(set *option.Set) (*Registry, *msg.Error) {
	reg := &Registry{
		Set:     set,
		Keys:    make(map[string]*option.Option),
		Names:   make(map[string]*option.Option),
		Letters: make(map[rune]*option.Option),
	}
	for _, opt := range set.Options {
		key := w.prefix + opt.Key
		if _, ok := reg.Keys[opt.Key]; ok {
			return nil, w.cfg.NewError(msg.ErrDuplicateOptionName, 0, key, opt.Key)
		}
		reg.Keys[opt.Key] = opt

		names := declaredNames(opt)
		for _, name := range names {
			if strings.ContainsAny(name, " \t\n=") {
				return nil, w.cfg.NewError(msg.ErrInvalidOptionName, 0, key, name)
			}
			if _, ok := reg.Names[name]; ok {
				return nil, w.cfg.NewError(msg.ErrDuplicateOptionName, 0, key, name)
			}
			reg.Names[name] = opt
		}

		if opt.Positional {
			if reg.Positional != nil {
				return nil, w.cfg.NewError(msg.ErrDuplicatePositionalOption, 0,
					key, w.prefix+reg.Positional.Key)
			}
			reg.Positional = opt
		} else if len(names) == 0 {
			return nil, w.cfg.NewError(msg.ErrOptionWithNoName, 0, key)
		}

		for _, letter := range opt.ClusterLetters {
			if _, ok := reg.Letters[letter]; ok {
				return nil, w.cfg.NewError(msg.ErrDuplicateClusterLetter, 0, key, string(letter))
			}
			reg.Letters[letter] = opt
		}
	}
	return reg, nil
}

// declaredNames lists every name the option claims: the name slots,
// negation names and the positional marker.
func declaredNames(opt *option.Option) []string {
	var names []string
	for _, n := range opt.Names {
		if n != "" {
			names = append(names, n)
		}
	}
	names = append(names, opt.NegationNames...)
	if opt.Positional && opt.PositionalMarker != "" {
		names = append(names, opt.PositionalMarker)
	}
	return names
}
