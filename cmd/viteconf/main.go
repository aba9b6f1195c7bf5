package main

import (
	"os"

	"github.com/bianoble/viteconf/cmd/viteconf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
