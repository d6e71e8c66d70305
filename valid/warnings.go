package valid

import (
	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
	"github.com/trulysimple/tsargp/similar"
	"github.com/trulysimple/tsargp/termstr"
)

// checkNamingIssues runs the non-fatal naming passes over one set: pairs
// of names from different options that are suspiciously similar, name
// slots mixing naming conventions, and variadic options with cluster
// letters. Findings accumulate in first-detected order.
func (w *walker) checkNamingIssues(set *option.Set) {
	w.checkSimilarNames(set)
	w.checkConventions(set)
	for _, opt := range set.Options {
		if opt.ClusterLetters != "" && opt.IsVariadic() {
			w.warn(w.cfg.NewError(msg.WarnVariadicClusterLetter, 0, w.prefix+opt.Key))
		}
	}
}

// checkSimilarNames compares every declared name against the names of
// later options; each offending pair is reported once. A pair offends
// when its similarity is strictly above the threshold, so a pair sitting
// exactly on the threshold passes.
func (w *walker) checkSimilarNames(set *option.Set) {
	type owned struct {
		name string
		opt  *option.Option
	}
	var names []owned
	for _, opt := range set.Options {
		for _, n := range declaredNames(opt) {
			names = append(names, owned{n, opt})
		}
	}
	for i, a := range names {
		var matches []string
		for _, b := range names[i+1:] {
			if b.opt == a.opt {
				continue
			}
			if similar.Similarity(similar.Normalize(a.name), similar.Normalize(b.name)) > w.threshold {
				matches = append(matches, b.name)
			}
		}
		if len(matches) > 0 {
			w.warn(w.cfg.NewError(msg.WarnTooSimilarNames, 0, a.name, nameList(w.cfg, matches)))
		}
	}
}

// checkConventions flags name slots whose names disagree on case, dash
// prefix or word-delimiter style. One warning per slot and family.
func (w *walker) checkConventions(set *option.Set) {
	slots := 0
	for _, opt := range set.Options {
		if len(opt.Names) > slots {
			slots = len(opt.Names)
		}
	}
	for slot := 0; slot < slots; slot++ {
		variants := make(map[similar.Family]map[string][]string)
		for _, opt := range set.Options {
			if slot >= len(opt.Names) || opt.Names[slot] == "" {
				continue
			}
			name := opt.Names[slot]
			for family, variant := range similar.Conventions(name) {
				if variants[family] == nil {
					variants[family] = make(map[string][]string)
				}
				variants[family][variant] = append(variants[family][variant], name)
			}
		}
		for _, family := range []similar.Family{similar.FamilyCase, similar.FamilyPrefix, similar.FamilyDelimiter} {
			found := variants[family]
			if len(found) < 2 {
				continue
			}
			w.warn(w.cfg.NewError(msg.WarnMixedNamingConvention, 0,
				slot, conventionList(w.cfg, family, found)))
		}
	}
}

func (w *walker) warn(e *msg.Error) {
	w.warnings = append(w.warnings, e)
}

// nameList renders option names as a comma-separated nested string.
func nameList(cfg *msg.Config, names []string) *termstr.String {
	s := termstr.New(0)
	sty := cfg.ValueStyle()
	for i, n := range names {
		if i > 0 {
			s.Close(",")
		}
		s.Styled(sty.Option, n)
	}
	return s
}

// conventionList renders "family: 'variant': name1, name2; ..." with a
// stable variant order (first appearance among the slot's names).
func conventionList(cfg *msg.Config, family similar.Family, found map[string][]string) *termstr.String {
	s := termstr.New(0)
	s.Word(family.String()).Close(":")
	for i, variant := range sortedByFirstName(found) {
		if i > 0 {
			s.Close(";")
		}
		s.Word("'" + variant + "':")
		s.Append(nameList(cfg, found[variant]))
	}
	return s
}

// sortedByFirstName orders variants by their first offending name so the
// report is deterministic regardless of map iteration.
func sortedByFirstName(found map[string][]string) []string {
	variants := make([]string, 0, len(found))
	for v := range found {
		variants = append(variants, v)
	}
	for i := 1; i < len(variants); i++ {
		for j := i; j > 0 && found[variants[j]][0] < found[variants[j-1]][0]; j-- {
			variants[j], variants[j-1] = variants[j-1], variants[j]
		}
	}
	return variants
}
