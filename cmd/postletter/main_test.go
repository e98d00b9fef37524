package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lvillar/postletter"
	"github.com/lvillar/postletter/config"
	"github.com/lvillar/postletter/output"
)

const dataset = `name,gender,location_country,location_state,location_postal_code,location_city,location_street
Eva Muster,F,Österreich,Musterbundesland,9875,Musterstadt,Musterstraße 1
Max Mustermann,M,Österreich,Musterbundesland,9875,Musterstadt,Musterstraße 1
Firma ABC,,Österreich,Musterbundesland,9875,Industriestadt,Industriestraße 1
Unbekannt,,Österreich,,,,
`

func setup(t *testing.T) (config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "dataset.csv")
	if err := os.WriteFile(in, []byte(dataset), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.FromMap(map[string]string{
		"POSTLETTER_DATASET":   in,
		"POSTLETTER_OUTPUT":    filepath.Join(dir, "letters.pdf"),
		"POSTLETTER_LOG_LEVEL": "error",
	})
	if err != nil {
		t.Fatal(err)
	}
	return cfg, dir
}

func TestRun(t *testing.T) {
	cfg, dir := setup(t)
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), cfg, []string{"-mark", "datamatrix"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "3 of 4 pages rendered") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "record 4 skipped") {
		t.Errorf("skipped record not reported: %q", stdout.String())
	}
	data, err := os.ReadFile(filepath.Join(dir, "letters.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestRunStrict(t *testing.T) {
	cfg, dir := setup(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), cfg, []string{"-strict"}, &stdout, &stderr)
	if !errors.Is(err, postletter.ErrData) {
		t.Fatalf("err = %v, want ErrData", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "letters.pdf")); !os.IsNotExist(err) {
		t.Error("output written despite strict failure")
	}
}

func TestRunNoClobber(t *testing.T) {
	cfg, _ := setup(t)
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), cfg, nil, &stdout, &stderr); err != nil {
		t.Fatalf("first run: %v", err)
	}
	err := run(context.Background(), cfg, []string{"-no-clobber"}, &stdout, &stderr)
	if !errors.Is(err, output.ErrExists) {
		t.Fatalf("err = %v, want ErrExists", err)
	}
}

func TestRunBadInputs(t *testing.T) {
	cfg, dir := setup(t)
	var stdout, stderr bytes.Buffer

	if err := run(context.Background(), cfg, []string{"-fonts", dir}, &stdout, &stderr); !errors.Is(err, postletter.ErrResource) {
		t.Errorf("missing fonts: err = %v", err)
	}
	if err := run(context.Background(), cfg, []string{"-mark", "ean13"}, &stdout, &stderr); !errors.Is(err, postletter.ErrInvalidOption) {
		t.Errorf("bad mark: err = %v", err)
	}
	if err := run(context.Background(), cfg, []string{"-template", filepath.Join(dir, "none.json")}, &stdout, &stderr); !errors.Is(err, postletter.ErrResource) {
		t.Errorf("missing template: err = %v", err)
	}
	if err := run(context.Background(), cfg, []string{"-dataset", filepath.Join(dir, "none.csv")}, &stdout, &stderr); err == nil {
		t.Error("missing dataset: expected error")
	}
}
