package main

import (
	"fmt"
	"os"

	"github.com/soyeahso/slackhook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "slackhook:", err)
		os.Exit(1)
	}
}
