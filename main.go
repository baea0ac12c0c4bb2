package main

import (
	"github.com/carolynnhierso/debruijn/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
