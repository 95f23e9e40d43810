package main

// CLI is the root Kong command structure, replacing the teacher's
// flag-based cmd/main.go with a Kong CLI struct and subcommands, in the
// same struct-of-subcommands style as spectr's cmd.CLI/root.go.
type CLI struct {
	Parse ParseCmd `cmd:"" help:"Parse a file or stdin and print its expression tree."`
	Fmt   FmtCmd   `cmd:"" help:"Rewrite a file to its canonical printed form."`
	Watch WatchCmd `cmd:"" help:"Re-parse a file every time it changes on disk."`
}
