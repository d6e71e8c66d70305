package help

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
	"github.com/trulysimple/tsargp/styles"
	"github.com/trulysimple/tsargp/termstr"
)

// Formatter renders help messages for one validated option set.
type Formatter struct {
	cfg  *Config
	mcfg *msg.Config
	set  *option.Set
}

// New builds a help formatter. Both configs may be nil for defaults. The
// set must have passed validation; rendering never fails after that.
func New(cfg *Config, mcfg *msg.Config, set *option.Set) *Formatter {
	return &Formatter{cfg: cfg, mcfg: mcfg, set: set}
}

// FormatHelp renders every visible option, grouped under its group label
// in declaration order.
func (f *Formatter) FormatHelp() msg.Message {
	var out msg.Message
	for _, group := range f.groups() {
		out = append(out, f.groupEntries(group)...)
	}
	return out
}

// groups lists group labels in first-appearance order.
func (f *Formatter) groups() []string {
	var order []string
	seen := make(map[string]bool)
	for _, opt := range f.set.Options {
		if opt.Hidden {
			continue
		}
		if !seen[opt.Group] {
			seen[opt.Group] = true
			order = append(order, opt.Group)
		}
	}
	return order
}

// groupEntries renders the heading and aligned entries of one group.
func (f *Formatter) groupEntries(group string) msg.Message {
	var opts []*option.Option
	for _, opt := range f.set.Options {
		if !opt.Hidden && opt.Group == group {
			opts = append(opts, opt)
		}
	}
	var out msg.Message
	if group != "" {
		heading := termstr.New(0)
		heading.Styled(styles.Of(styles.Bold), group).Break(1)
		out = append(out, heading)
	}

	widths := f.measure(opts)
	for _, opt := range opts {
		out = append(out, f.entry(opt, widths)...)
	}
	return out
}

// widths carries the first-pass measurements used to align a group.
type widths struct {
	slots []int // per-slot cell widths (slot alignment)
	names int   // widest names cell
	param int   // widest parameter cell
}

// measure runs the first formatting pass: the widest names cell (overall
// and per slot) and the widest parameter cell.
func (f *Formatter) measure(opts []*option.Option) widths {
	var m widths
	slotCount := 0
	for _, opt := range opts {
		if len(opt.Names) > slotCount {
			slotCount = len(opt.Names)
		}
	}
	m.slots = make([]int, slotCount)
	for _, opt := range opts {
		cells := f.nameCells(opt, slotCount)
		total := 0
		for i, cell := range cells {
			w := runewidth.StringWidth(cell)
			if w > m.slots[i] {
				m.slots[i] = w
			}
			total += w
			if i > 0 && cell != "" {
				total++ // separating space
			}
		}
		if total > m.names {
			m.names = total
		}
		if w := f.paramCell(opt, 0).Len(); w > m.param {
			m.param = w
		}
	}
	if f.cfg != nil && f.cfg.SlotAlignment {
		m.names = 0
		for i, w := range m.slots {
			m.names += w
			if i > 0 {
				m.names++
			}
		}
	}
	return m
}

// nameCells returns one cell per slot: the slot's name plus the separator
// when a later slot is occupied.
func (f *Formatter) nameCells(opt *option.Option, slotCount int) []string {
	sep := f.cfg.separator()
	cells := make([]string, slotCount)
	last := -1
	for i, name := range opt.Names {
		if name != "" {
			last = i
		}
	}
	for i, name := range opt.Names {
		if name == "" {
			continue
		}
		if i < last {
			cells[i] = name + sep
		} else {
			cells[i] = name
		}
	}
	return cells
}

// namesText renders the names column content of one option as plain text,
// padded per slot when slot alignment is on.
func (f *Formatter) namesText(opt *option.Option, m widths) string {
	slotAligned := f.cfg != nil && f.cfg.SlotAlignment
	cells := f.nameCells(opt, len(m.slots))
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cell)
		if slotAligned {
			b.WriteString(strings.Repeat(" ", m.slots[i]-runewidth.StringWidth(cell)))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// entry runs the second pass for one option: three terminal strings at
// their computed columns, closed by a line break.
func (f *Formatter) entry(opt *option.Option, m widths) msg.Message {
	namesCol := f.cfg.namesColumn()
	paramCol := f.cfg.paramColumn()
	descrCol := f.cfg.descrColumn()

	var out msg.Message

	namesEnd := namesCol.Indent
	if !namesCol.Hidden {
		text := f.namesText(opt, m)
		indent := namesCol.Indent
		if namesCol.Align == AlignRight {
			indent += m.names - runewidth.StringWidth(text)
		}
		names := termstr.New(indent)
		names.Styled(f.nameStyle(opt), text)
		out = append(out, names)
		namesEnd = namesCol.Indent + m.names
	}

	paramEnd := namesEnd
	if !paramCol.Hidden && opt.Kind.HasValue() {
		cell := f.paramCell(opt, 0)
		indent := namesEnd + paramCol.Indent
		if paramCol.Align == AlignRight {
			indent += m.param - cell.Len()
		}
		param := termstr.New(indent)
		if paramCol.Breaks > 0 {
			param.Break(paramCol.Breaks)
		}
		param.Append(cell)
		out = append(out, param)
	}
	if !paramCol.Hidden && m.param > 0 {
		paramEnd = namesEnd + paramCol.Indent + m.param
	}

	if !descrCol.Hidden {
		descr := termstr.New(paramEnd + descrCol.Indent)
		if descrCol.Breaks > 0 {
			descr.Break(descrCol.Breaks)
		}
		f.describe(descr, opt)
		if descr.Count() > 0 {
			out = append(out, descr)
		}
	}

	if len(out) == 0 {
		return nil
	}
	out[len(out)-1].Break(1)
	return out
}

func (f *Formatter) nameStyle(opt *option.Option) styles.Style {
	if opt.Styles != nil && opt.Styles.Names != nil {
		return opt.Styles.Names
	}
	return f.mcfg.ValueStyle().Option
}

// paramCell renders the parameter column content: the example value when
// present, otherwise a type placeholder, ellipsis-suffixed when variadic
// and bracketed when the parameter may be omitted.
func (f *Formatter) paramCell(opt *option.Option, indent int) *termstr.String {
	s := termstr.New(indent)
	if !opt.Kind.HasValue() {
		return s
	}
	optional := opt.Fallback != cty.NilVal ||
		(opt.ParamCount != nil && opt.ParamCount.Min == 0)
	if optional {
		s.Open("[")
	}
	if opt.Example != cty.NilVal {
		f.mcfg.FormatValue(s, opt.Example)
	} else {
		s.Styled(f.mcfg.ValueStyle().Value, "<"+typeWord(opt)+">")
	}
	if opt.IsVariadic() {
		s.Close("...")
	}
	if optional {
		s.Close("]")
	}
	return s
}

func typeWord(opt *option.Option) string {
	switch opt.Kind.ElemType() {
	case cty.Bool:
		return "boolean"
	case cty.Number:
		return "number"
	}
	return "string"
}
