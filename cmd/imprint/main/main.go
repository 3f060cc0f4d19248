package main

import (
	"fmt"
	"os"

	"github.com/templatekit/imprint/cmd/imprint"
	"github.com/templatekit/imprint/pkg/style"
)

func main() {
	rootCmd := imprint.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
