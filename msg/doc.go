// Package msg builds diagnostic and help messages from phrase templates.
// A phrase is plain text with "%x" specifiers, where the letter selects a
// typed formatter (boolean, string, number, regex, option name, value,
// URL, nested string), and optional "(alt1|alt2|...)" groups resolved by
// an index supplied with the arguments. The package also owns the message
// configuration: phrases per diagnostic code, connective words for
// requirement rendering, and styles per value kind.
package msg
