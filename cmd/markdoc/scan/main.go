package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-markdoc/cmd/markdoc/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runScan(os.Args[1:]); err != nil {
		log.Fatalf("markdoc scan: %v", err)
	}
}

func runScan(args []string) error {
	fs := flag.NewFlagSet("markdoc-scan", flag.ExitOnError)
	source := fs.String("source", "", "Markdown file to scan")
	template := fs.String("template", "", "Optional Word template (.docx) to diff the requirements against")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *source == "" {
		return fmt.Errorf("-source is required")
	}

	module, err := moduleBuilder(bootstrap.Options{Verbose: *verbose})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	report, err := module.Service.ScanStyles(context.Background(), *source, *template)
	if err != nil {
		return fmt.Errorf("scan styles: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Required styles (%d):\n  %s\n", len(report.Required), strings.Join(report.Required, "\n  "))
	if *template != "" {
		fmt.Fprintf(os.Stdout, "\nTemplate styles (%d)\n", len(report.Existing))
		if len(report.Missing) == 0 {
			fmt.Fprintln(os.Stdout, "Template already defines every required style")
		} else {
			fmt.Fprintf(os.Stdout, "Missing styles (%d):\n  %s\n", len(report.Missing), strings.Join(report.Missing, "\n  "))
		}
	}

	return nil
}
