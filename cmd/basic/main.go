package main

import (
	"os"

	"github.com/ReleasedGroup/go-basic/cmd/basic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
