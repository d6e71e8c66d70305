// Package option defines the static data model of a command-line option
// set: the option descriptor with its names, constraints and styling, the
// recursive requirement expression relating options to one another, and
// the ordered set that groups options together. Values are carried as
// cty.Value so that defaults, examples, enumerations and requirement
// values all share one typed representation.
//
// The model is purely declarative; the valid package checks it and the
// help package renders it.
package option
