package help

// Item selects one description fragment. Items render in the configured
// order; an item whose attribute is absent renders nothing.
type Item int

const (
	ItemSynopsis Item = iota
	ItemNegation
	ItemSeparator
	ItemParamCount
	ItemPositional
	ItemAppend
	ItemTrim
	ItemCase
	ItemRound
	ItemEnums
	ItemRegex
	ItemRange
	ItemUnique
	ItemLimit
	ItemRequires
	ItemRequired
	ItemDefault
	ItemDeprecated
	ItemLink
	ItemEnvVar
	ItemRequiredIf
	ItemCluster
	ItemFallback
)

// defaultItems is the default rendering order of description items.
var defaultItems = []Item{
	ItemSynopsis, ItemNegation, ItemSeparator, ItemParamCount,
	ItemPositional, ItemAppend, ItemTrim, ItemCase, ItemRound,
	ItemEnums, ItemRegex, ItemRange, ItemUnique, ItemLimit,
	ItemRequires, ItemRequired, ItemDefault, ItemDeprecated,
	ItemLink, ItemEnvVar, ItemRequiredIf, ItemCluster, ItemFallback,
}

// defaultItemPhrases maps each item to its phrase template. Alternatives
// in parentheses are selected by the renderer; see the msg package for
// the template syntax.
var defaultItemPhrases = map[Item]string{
	ItemSynopsis:   "%t",
	ItemNegation:   "Can be negated with %t.",
	ItemSeparator:  "Values are delimited by %s.",
	ItemParamCount: "Accepts (multiple|at least %n|at most %n|between %n and %n) parameters.",
	ItemPositional: "Accepts positional arguments(| that may be preceded by %o).",
	ItemAppend:     "May be specified multiple times.",
	ItemTrim:       "Values will be trimmed.",
	ItemCase:       "Values will be converted to (lowercase|uppercase).",
	ItemRound:      "Values will be rounded (towards zero|down|up|to the nearest integer).",
	ItemEnums:      "Values must be one of: %t.",
	ItemRegex:      "Values must match the regex %r.",
	ItemRange:      "Values must be in the range [%n, %n].",
	ItemUnique:     "Duplicate values will be removed.",
	ItemLimit:      "Value count is limited to %n.",
	ItemRequires:   "Requires %t.",
	ItemRequired:   "Always required.",
	ItemDefault:    "Defaults to %v.",
	ItemDeprecated: "Deprecated for %t.",
	ItemLink:       "Refer to %u for details.",
	ItemEnvVar:     "Can be specified through the %o environment variable.",
	ItemRequiredIf: "Required if %t.",
	ItemCluster:    "Can be clustered with %s.",
	ItemFallback:   "Falls back to %v if specified without parameter.",
}

// Alignment selects how a column lines up against its width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column configures one of the three help columns.
type Column struct {
	Align  Alignment
	Indent int
	// Breaks inserts line breaks before the column's content, moving it
	// to its own line under the previous column.
	Breaks int
	Hidden bool
}

// Config tunes the help formatter. The zero value renders every column
// left-aligned at the documented default indentation with all items in
// default order.
type Config struct {
	Names Column
	Param Column
	Descr Column

	// Items overrides the description items and their order.
	Items []Item
	// Phrases overrides the phrase template per item.
	Phrases map[Item]string

	// NameSeparator joins name slots; it merges onto the preceding name.
	NameSeparator string

	// SlotAlignment aligns each name slot individually instead of the
	// names column as a whole.
	SlotAlignment bool
}

const (
	defaultNamesIndent = 2
	defaultParamIndent = 2
	defaultDescrIndent = 2
	defaultSeparator   = ","
)

func (c *Config) items() []Item {
	if c != nil && len(c.Items) > 0 {
		return c.Items
	}
	return defaultItems
}

func (c *Config) phrase(item Item) string {
	if c != nil {
		if p, ok := c.Phrases[item]; ok {
			return p
		}
	}
	return defaultItemPhrases[item]
}

func (c *Config) separator() string {
	if c != nil && c.NameSeparator != "" {
		return c.NameSeparator
	}
	return defaultSeparator
}

func (c *Config) column(get func(*Config) Column, defaultIndent int) Column {
	col := Column{Indent: defaultIndent}
	if c != nil {
		col = get(c)
		if col.Indent == 0 {
			col.Indent = defaultIndent
		}
	}
	return col
}

func (c *Config) namesColumn() Column {
	return c.column(func(c *Config) Column { return c.Names }, defaultNamesIndent)
}

func (c *Config) paramColumn() Column {
	return c.column(func(c *Config) Column { return c.Param }, defaultParamIndent)
}

func (c *Config) descrColumn() Column {
	return c.column(func(c *Config) Column { return c.Descr }, defaultDescrIndent)
}
