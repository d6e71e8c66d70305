package help

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/option"
	"github.com/trulysimple/tsargp/styles"
	"github.com/trulysimple/tsargp/termstr"
)

// describe renders the description items in configured order. Every item
// is a no-op when its attribute is absent from the option. A per-option
// description style wraps the whole rendered description.
func (f *Formatter) describe(dst *termstr.String, opt *option.Option) {
	var st styles.Style
	if opt.Styles != nil {
		st = opt.Styles.Descr
	}
	if st == nil {
		for _, item := range f.cfg.items() {
			f.renderItem(dst, opt, item)
		}
		return
	}
	body := termstr.New(0)
	for _, item := range f.cfg.items() {
		f.renderItem(body, opt, item)
	}
	if body.Count() == 0 {
		return
	}
	dst.Seq(st.Sequence())
	dst.Append(body)
	dst.Seq(styles.Reset)
}

func (f *Formatter) renderItem(dst *termstr.String, opt *option.Option, item Item) {
	phrase := f.cfg.phrase(item)
	switch item {
	case ItemSynopsis:
		if opt.Synopsis != "" {
			syn := termstr.New(0)
			syn.Split(opt.Synopsis, nil)
			f.mcfg.Format(dst, phrase, 0, syn)
		}
	case ItemNegation:
		if len(opt.NegationNames) > 0 {
			f.mcfg.Format(dst, phrase, 0, f.nameJoin(opt.NegationNames))
		}
	case ItemSeparator:
		if opt.Separator != "" {
			f.mcfg.Format(dst, phrase, 0, opt.Separator)
		}
	case ItemParamCount:
		f.renderParamCount(dst, opt, phrase)
	case ItemPositional:
		if opt.Positional {
			if opt.PositionalMarker != "" {
				f.mcfg.Format(dst, phrase, 1, opt.PositionalMarker)
			} else {
				f.mcfg.Format(dst, phrase, 0)
			}
		}
	case ItemAppend:
		if opt.Append {
			f.mcfg.Format(dst, phrase, 0)
		}
	case ItemTrim:
		if opt.Trim {
			f.mcfg.Format(dst, phrase, 0)
		}
	case ItemCase:
		if opt.Case != option.CaseNone {
			f.mcfg.Format(dst, phrase, int(opt.Case)-1)
		}
	case ItemRound:
		if opt.Round != option.RoundNone {
			f.mcfg.Format(dst, phrase, int(opt.Round)-1)
		}
	case ItemEnums:
		if len(opt.Enums) > 0 {
			list := termstr.New(0)
			for i, e := range opt.Enums {
				if i > 0 {
					list.Close(f.mcfg.Words().ListSep)
				}
				f.mcfg.FormatValue(list, e)
			}
			f.mcfg.Format(dst, phrase, 0, list)
		}
	case ItemRegex:
		if opt.Regex != nil {
			f.mcfg.Format(dst, phrase, 0, opt.Regex)
		}
	case ItemRange:
		if opt.Range != nil {
			f.mcfg.Format(dst, phrase, 0, opt.Range.Min, opt.Range.Max)
		}
	case ItemUnique:
		if opt.Unique {
			f.mcfg.Format(dst, phrase, 0)
		}
	case ItemLimit:
		if opt.Limit > 0 {
			f.mcfg.Format(dst, phrase, 0, opt.Limit)
		}
	case ItemRequires:
		if opt.Requires != nil {
			req := termstr.New(0)
			f.formatRequires(req, opt.Requires, false)
			f.mcfg.Format(dst, phrase, 0, req)
		}
	case ItemRequired:
		if opt.Required {
			f.mcfg.Format(dst, phrase, 0)
		}
	case ItemDefault:
		if opt.Default != cty.NilVal {
			f.mcfg.Format(dst, phrase, 0, opt.Default)
		}
	case ItemDeprecated:
		if opt.Deprecated != "" {
			reason := termstr.New(0)
			reason.Split(opt.Deprecated, nil)
			f.mcfg.Format(dst, phrase, 0, reason)
		}
	case ItemLink:
		if opt.Link != "" {
			f.mcfg.Format(dst, phrase, 0, opt.Link)
		}
	case ItemEnvVar:
		if opt.EnvVar != "" {
			f.mcfg.Format(dst, phrase, 0, opt.EnvVar)
		}
	case ItemRequiredIf:
		if opt.RequiredIf != nil {
			req := termstr.New(0)
			f.formatRequires(req, opt.RequiredIf, false)
			f.mcfg.Format(dst, phrase, 0, req)
		}
	case ItemCluster:
		if opt.ClusterLetters != "" {
			f.mcfg.Format(dst, phrase, 0, opt.ClusterLetters)
		}
	case ItemFallback:
		if opt.Fallback != cty.NilVal {
			f.mcfg.Format(dst, phrase, 0, opt.Fallback)
		}
	}
}

// renderParamCount phrases the parameter-count bounds: unbounded counts
// read "multiple", one-sided bounds read "at least"/"at most", two-sided
// bounds read "between". Alternatives live in the phrase template.
func (f *Formatter) renderParamCount(dst *termstr.String, opt *option.Option, phrase string) {
	c := opt.ParamCount
	if c == nil {
		if opt.Kind.IsArray() && opt.Separator == "" {
			f.mcfg.Format(dst, phrase, 0)
		}
		return
	}
	switch {
	case c.Max < 0 && c.Min <= 0:
		f.mcfg.Format(dst, phrase, 0)
	case c.Max < 0:
		f.mcfg.Format(dst, phrase, 1, c.Min)
	case c.Min <= 0:
		f.mcfg.Format(dst, phrase, 2, c.Max)
	default:
		f.mcfg.Format(dst, phrase, 3, c.Min, c.Max)
	}
}

// nameJoin renders option names separated by the configured list
// separator.
func (f *Formatter) nameJoin(names []string) *termstr.String {
	s := termstr.New(0)
	sty := f.mcfg.ValueStyle()
	for i, n := range names {
		if i > 0 {
			s.Close(f.mcfg.Words().ListSep)
		}
		s.Styled(sty.Option, n)
	}
	return s
}
