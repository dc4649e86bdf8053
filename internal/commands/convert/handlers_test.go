package convertcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

type fakeConverter struct {
	convertCalls []interfaces.ConvertRequest
	scanCalls    []string
	convertErr   error
	scanErr      error
}

func (f *fakeConverter) Convert(_ context.Context, req interfaces.ConvertRequest) (*interfaces.ConvertResult, error) {
	f.convertCalls = append(f.convertCalls, req)
	if f.convertErr != nil {
		return nil, f.convertErr
	}
	return &interfaces.ConvertResult{OutputPath: "out/doc.docx", Metadata: interfaces.NewMetadata()}, nil
}

func (f *fakeConverter) ScanStyles(_ context.Context, sourcePath, templatePath string) (*interfaces.StyleReport, error) {
	f.scanCalls = append(f.scanCalls, sourcePath+"|"+templatePath)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return &interfaces.StyleReport{Required: []string{"Title"}}, nil
}

func (f *fakeConverter) Preview(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func TestConvertFileHandlerExecutesService(t *testing.T) {
	svc := &fakeConverter{}
	handler := NewConvertFileHandler(svc, nil, FeatureGates{})

	msg := ConvertFileCommand{SourcePath: "doc.md", TemplatePath: "tpl.docx", OutputDir: "out"}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(svc.convertCalls) != 1 {
		t.Fatalf("expected one conversion, got %d", len(svc.convertCalls))
	}
	req := svc.convertCalls[0]
	if req.SourcePath != "doc.md" || req.TemplatePath != "tpl.docx" || req.OutputDir != "out" {
		t.Fatalf("request mismatch: %#v", req)
	}
}

func TestConvertFileHandlerValidationShortCircuits(t *testing.T) {
	svc := &fakeConverter{}
	handler := NewConvertFileHandler(svc, nil, FeatureGates{})

	if err := handler.Execute(context.Background(), ConvertFileCommand{}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(svc.convertCalls) != 0 {
		t.Fatal("service must not run when validation fails")
	}
}

func TestConvertFileHandlerFeatureGate(t *testing.T) {
	svc := &fakeConverter{}
	handler := NewConvertFileHandler(svc, nil, FeatureGates{
		ConvertEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), ConvertFileCommand{SourcePath: "doc.md", TemplatePath: "tpl.docx"})
	if err == nil {
		t.Fatal("expected feature-disabled error")
	}
	if len(svc.convertCalls) != 0 {
		t.Fatal("service must not run when the feature is disabled")
	}
}

func TestConvertFileHandlerPropagatesServiceError(t *testing.T) {
	svc := &fakeConverter{convertErr: errors.New("template is locked")}
	handler := NewConvertFileHandler(svc, nil, FeatureGates{})

	err := handler.Execute(context.Background(), ConvertFileCommand{SourcePath: "doc.md", TemplatePath: "tpl.docx"})
	if err == nil {
		t.Fatal("expected service error to propagate")
	}
}

func TestScanStylesHandlerExecutesService(t *testing.T) {
	svc := &fakeConverter{}
	handler := NewScanStylesHandler(svc, nil, FeatureGates{})

	if err := handler.Execute(context.Background(), ScanStylesCommand{SourcePath: "doc.md"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(svc.scanCalls) != 1 || svc.scanCalls[0] != "doc.md|" {
		t.Fatalf("scan call mismatch: %#v", svc.scanCalls)
	}
}
