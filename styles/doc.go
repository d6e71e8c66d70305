// Package styles models terminal control sequences as plain data. SGR
// attributes are lists of numeric codes composed into escape sequences by
// concatenation, and a small set of cursor and erase sequences covers what
// the text layout engine needs for indentation and alignment.
package styles
