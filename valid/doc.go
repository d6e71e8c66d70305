// Package valid checks a declarative option set for internal consistency
// before any argument is parsed. It builds the name and cluster-letter
// registry while detecting duplicates and malformed names, verifies each
// option's constraints (enumerations, numeric ranges, parameter counts)
// and its statically declared values, recursively validates requirement
// expressions, and optionally flags suspiciously similar or inconsistent
// names.
//
// The first fatal inconsistency aborts validation with a *msg.Error;
// non-fatal findings accumulate as warnings in first-detected order. The
// Normalize function applies the same trim/case/round/enum/regex/range
// rules the validator uses, so an external argument parser produces
// values under identical semantics.
package valid
