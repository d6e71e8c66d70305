package help

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
	"github.com/trulysimple/tsargp/styles"
	"github.com/trulysimple/tsargp/termstr"
)

// SectionKind discriminates the help section variants.
type SectionKind int

const (
	// SectionUsage renders a single wrapped usage line for the program.
	SectionUsage SectionKind = iota
	// SectionGroups renders the grouped, column-aligned option entries.
	SectionGroups
	// SectionText renders free-form text with paragraph and list
	// awareness.
	SectionText
)

// Section describes one block of a complete help message.
type Section struct {
	Kind  SectionKind
	Title string
	// Program names the executable in a usage section.
	Program string
	// Text is the body of a text section.
	Text string
	// Indent overrides the content indentation of usage and text
	// sections.
	Indent int
}

// FormatSections composes a full help message from the given sections in
// order.
func (f *Formatter) FormatSections(sections []Section) msg.Message {
	var out msg.Message
	for i, sec := range sections {
		if i > 0 {
			blank := termstr.New(0)
			blank.Break(1)
			out = append(out, blank)
		}
		if sec.Title != "" {
			title := termstr.New(0)
			title.Styled(styles.Of(styles.Bold), sec.Title).Break(1)
			out = append(out, title)
		}
		switch sec.Kind {
		case SectionUsage:
			out = append(out, f.usage(sec))
		case SectionGroups:
			out = append(out, f.FormatHelp()...)
		case SectionText:
			text := termstr.New(sec.Indent)
			text.Split(sec.Text, nil).Break(1)
			out = append(out, text)
		}
	}
	return out
}

// usage renders the one-line (wrapped) usage synopsis: the program name
// followed by every visible option, optional ones bracketed, with its
// parameter placeholder. The positional option renders last.
func (f *Formatter) usage(sec Section) *termstr.String {
	s := termstr.New(sec.Indent)
	if sec.Program != "" {
		s.Styled(styles.Of(styles.Bold), sec.Program)
	}
	var positional *option.Option
	for _, opt := range f.set.Options {
		if opt.Hidden {
			continue
		}
		if opt.Positional {
			positional = opt
			continue
		}
		f.usageOption(s, opt)
	}
	if positional != nil {
		f.usagePositional(s, positional)
	}
	s.Break(1)
	return s
}

func (f *Formatter) usageOption(s *termstr.String, opt *option.Option) {
	if !opt.Required {
		s.Open("[")
	}
	s.Styled(f.nameStyle(opt), opt.PreferredName())
	if opt.Kind.HasValue() {
		s.Append(f.paramCell(opt, 0))
	}
	if !opt.Required {
		s.Close("]")
	}
}

func (f *Formatter) usagePositional(s *termstr.String, opt *option.Option) {
	name := opt.Key
	if opt.Example != cty.NilVal {
		f.mcfg.FormatValue(s.Open("["), opt.Example)
		s.Close("...").Close("]")
		return
	}
	s.Open("[").Styled(f.mcfg.ValueStyle().Value, "<"+name+">")
	s.Close("...").Close("]")
}
