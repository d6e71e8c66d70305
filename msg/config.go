package msg

import "github.com/trulysimple/tsargp/styles"

// Connectives are the words and symbols used to render requirement
// expressions and related lists.
type Connectives struct {
	And       string
	Or        string
	Not       string
	No        string
	Equals    string
	NotEquals string
	// ListSep joins rendered list members, merged onto the preceding
	// word (no space before it).
	ListSep string
}

// ValueStyles selects the style applied to each value kind when styled
// output is requested.
type ValueStyles struct {
	Boolean styles.Style
	String  styles.Style
	Number  styles.Style
	Regex   styles.Style
	Option  styles.Style
	Value   styles.Style
	URL     styles.Style
	Error   styles.Style
}

// Config carries everything needed to phrase and style a diagnostic.
// Fields left at their zero value fall back to documented defaults, so a
// nil or empty Config is usable.
type Config struct {
	// Phrases overrides the default phrase template per code.
	Phrases map[Code]string

	Connectives *Connectives
	Styles      *ValueStyles
}

var defaultConnectives = Connectives{
	And:       "and",
	Or:        "or",
	Not:       "not",
	No:        "no",
	Equals:    "==",
	NotEquals: "!=",
	ListSep:   ",",
}

var defaultStyles = ValueStyles{
	Boolean: styles.Of(styles.Yellow),
	String:  styles.Of(styles.Green),
	Number:  styles.Of(styles.Yellow),
	Regex:   styles.Of(styles.Red),
	Option:  styles.Of(styles.Magenta),
	Value:   styles.Of(styles.Cyan),
	URL:     styles.Of(styles.Cyan),
	Error:   styles.Of(styles.Red),
}

// Phrase returns the template for a code, preferring any override.
func (c *Config) Phrase(code Code) string {
	if c != nil {
		if p, ok := c.Phrases[code]; ok {
			return p
		}
	}
	return defaultPhrases[code]
}

// Words returns the connectives in effect.
func (c *Config) Words() *Connectives {
	if c != nil && c.Connectives != nil {
		return c.Connectives
	}
	return &defaultConnectives
}

// ValueStyle returns the styles in effect.
func (c *Config) ValueStyle() *ValueStyles {
	if c != nil && c.Styles != nil {
		return c.Styles
	}
	return &defaultStyles
}
