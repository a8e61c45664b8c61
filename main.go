package main

import (
	"os"

	"github.com/a11yscan/a11yscan/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
