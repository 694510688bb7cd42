package main

import (
	"os"

	"github.com/Vladislav15-maker/FamilyCourse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
