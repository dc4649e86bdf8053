package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-markdoc/cmd/markdoc/internal/bootstrap"
	convertcmd "github.com/goliatone/go-markdoc/internal/commands/convert"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runConvert(os.Args[1:]); err != nil {
		log.Fatalf("markdoc convert: %v", err)
	}
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("markdoc-convert", flag.ExitOnError)
	source := fs.String("source", "", "Markdown file to convert")
	template := fs.String("template", "", "Word template (.docx) supplying the style catalog")
	outputDir := fs.String("output-dir", "", "Directory receiving the rendered document (defaults to config)")
	indentUnit := fs.Float64("indent-unit", 0, "Left indent in inches added per heading level beyond the first")
	timestamps := fs.Bool("timestamps", true, "Prefix output file names with a conversion timestamp")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *source == "" {
		return fmt.Errorf("-source is required")
	}
	if *template == "" {
		return fmt.Errorf("-template is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		OutputDir:      *outputDir,
		IndentUnit:     *indentUnit,
		TimestampNames: bootstrap.BoolPointer(*timestamps),
		Verbose:        *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := convertcmd.NewConvertFileHandler(module.Service, nil, convertcmd.FeatureGates{})
	cmd := convertcmd.ConvertFileCommand{
		SourcePath:   *source,
		TemplatePath: *template,
		OutputDir:    *outputDir,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute convert command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "conversion completed successfully")

	return nil
}
