package main

import "github.com/alecthomas/kong"

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sat"),
		kong.Description("Parse, format, or watch an indentation-sensitive source file."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
