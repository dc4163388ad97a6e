package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/sweets/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sweets:", err)
		os.Exit(1)
	}
}
