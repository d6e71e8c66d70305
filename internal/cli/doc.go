// Package cli is responsible for parsing the demo viewer's command-line
// arguments, validating user input, and handling process-level concerns
// like exit codes. It translates CLI flags into the viewer's internal
// configuration.
package cli
