package main

import (
	"os"

	"github.com/arthur-debert/appsel/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
