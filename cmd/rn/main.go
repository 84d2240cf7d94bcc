package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrison/rn/internal/cmd"
	"github.com/harrison/rn/internal/resolver"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Resolver refusals were already reported by the command; only
		// surface errors from outside the resolution protocol here.
		var resErr *resolver.Error
		if !errors.As(err, &resErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
