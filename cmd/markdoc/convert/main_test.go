package main

import (
	"context"
	"testing"

	"github.com/goliatone/go-markdoc/cmd/markdoc/internal/bootstrap"
	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

type stubConverterService struct {
	convertCalls []interfaces.ConvertRequest
}

func (s *stubConverterService) Convert(_ context.Context, req interfaces.ConvertRequest) (*interfaces.ConvertResult, error) {
	s.convertCalls = append(s.convertCalls, req)
	return &interfaces.ConvertResult{OutputPath: "out/doc.docx", Metadata: interfaces.NewMetadata()}, nil
}

func (s *stubConverterService) ScanStyles(context.Context, string, string) (*interfaces.StyleReport, error) {
	return &interfaces.StyleReport{}, nil
}

func (s *stubConverterService) Preview(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func TestRunConvertUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubConverterService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runConvert([]string{
		"-source", "doc.md",
		"-template", "tpl.docx",
		"-output-dir", "artifacts",
	}); err != nil {
		t.Fatalf("runConvert returned error: %v", err)
	}
	if len(svc.convertCalls) != 1 {
		t.Fatalf("expected one conversion, got %d", len(svc.convertCalls))
	}
	req := svc.convertCalls[0]
	if req.SourcePath != "doc.md" || req.TemplatePath != "tpl.docx" || req.OutputDir != "artifacts" {
		t.Fatalf("request mismatch: %#v", req)
	}
}

func TestRunConvertRequiresSourceAndTemplate(t *testing.T) {
	if err := runConvert([]string{"-template", "tpl.docx"}); err == nil {
		t.Fatal("expected error for missing source")
	}
	if err := runConvert([]string{"-source", "doc.md"}); err == nil {
		t.Fatal("expected error for missing template")
	}
}
