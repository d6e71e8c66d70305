// Package help renders a validated option set as column-aligned,
// style-aware terminal text. Every visible option contributes a row of
// three columns (names, parameter, description); column widths are
// measured in a first pass and applied in a second so that all entries in
// a group line up. Descriptions are assembled from an ordered list of
// items, each a phrase template that renders nothing when its attribute
// is absent. Sections compose rows with a usage line and free-text
// blocks into a complete help message.
package help
