package msg

import (
	"strings"

	"github.com/trulysimple/tsargp/termstr"
)

// Message is an ordered list of terminal strings forming one logical unit
// of output: a help entry, an error phrase, a usage line. A message is
// immutable once built; wrapping is a pure function of its parts.
type Message []*termstr.String

// Wrap renders the message at the target width. Style sequences are
// emitted only when withStyles is set.
func (m Message) Wrap(width int, withStyles bool) string {
	var b strings.Builder
	column := 0
	for _, s := range m {
		column = s.Wrap(&b, column, width, withStyles)
	}
	return b.String()
}

// String renders the message unwrapped and unstyled.
func (m Message) String() string { return m.Wrap(0, false) }

// Error is a structured diagnostic: a code plus its rendered message. It
// satisfies the error interface with the plain-text rendering.
type Error struct {
	Code Code
	Msg  Message
}

// NewError builds a diagnostic from the code's phrase template.
func (c *Config) NewError(code Code, alt int, args ...any) *Error {
	return &Error{Code: code, Msg: Message{c.FormatString(0, c.Phrase(code), alt, args...)}}
}

func (e *Error) Error() string { return e.Msg.String() }

// Wrap renders the diagnostic at the target width, styled on demand.
func (e *Error) Wrap(width int, withStyles bool) string {
	return e.Msg.Wrap(width, withStyles)
}
