package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/templatekit/imprint/cmd/imprint"
	"github.com/templatekit/imprint/internal/version"
)

func main() {
	rootCmd := imprint.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "IMPRINT",
		Section: "1",
		Source:  "imprint " + version.Version,
		Manual:  "imprint manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
