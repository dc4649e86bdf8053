package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-markdoc"
	"github.com/goliatone/go-markdoc/cmd/markdoc/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("markdoc preview: %v", err)
	}
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("markdoc-preview", flag.ExitOnError)
	source := fs.String("source", "", "Markdown file to render as HTML")
	hardWraps := fs.Bool("hard-wraps", false, "Render newlines as hard line breaks")
	safeMode := fs.Bool("safe-mode", false, "Escape raw HTML in the source")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *source == "" {
		return fmt.Errorf("-source is required")
	}

	data, err := os.ReadFile(*source)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	module, err := moduleBuilder(bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	html, err := module.Service.Preview(context.Background(), data, markdoc.ParseOptions{
		HardWraps: *hardWraps,
		SafeMode:  *safeMode,
	})
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(html))

	return nil
}
