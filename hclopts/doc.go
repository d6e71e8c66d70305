// Package hclopts loads declarative option sets from HCL manifests. It
// parses `option "<kind>" "<key>"` blocks, including nested blocks for
// subcommands, and translates them into the option package's model so
// that a program can keep its command-line surface in a manifest next to
// its code. Manifests go through the same validation as sets built in Go.
package hclopts
