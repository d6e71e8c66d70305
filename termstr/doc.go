// Package termstr implements the terminal string: an ordered buffer of
// text segments that defers line-wrapping until a target width is known.
// Each segment carries its visible width, so control sequences embedded
// for styling never disturb column accounting. A terminal string knows its
// own indentation column, whether it is right-aligned, and how to split
// free-form text into paragraphs, list items and words.
//
// Styled and unstyled renders share one wrapping code path: zero-width
// segments are simply dropped when style emission is off.
package termstr
