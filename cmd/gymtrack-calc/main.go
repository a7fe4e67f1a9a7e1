package main

import (
	"fmt"
	"os"

	"github.com/2beens/gymtrack/internal/calc"
)

func main() {
	if err := calc.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
