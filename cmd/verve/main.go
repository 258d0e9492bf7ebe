package main

import (
	"os"

	"github.com/YoshitsuguKoike/verve/internal/interface/cli"
)

func main() {
	os.Exit(cli.Execute(os.Stderr))
}
