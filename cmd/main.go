// Package cmd implements the z2stb CLI that pushes TradeZella exports into
// the STB bulk-import sheet.
package cmd

import "github.com/google/subcommands"

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "convert")
	c.Register(&previewCmd{}, "inspect")
	c.Register(&checkCmd{}, "setup")
}
