package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/raatiniemi/linker/internal/cli"
	"github.com/raatiniemi/linker/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LINKER",
		Section: "1",
		Source:  "linker " + version.Version,
		Manual:  "linker manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
