package main

import (
	"os"

	"github.com/iw2rmb/vigenere/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.DefaultDeps(), os.Args[1:]))
}
