package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Dataset != "dataset.csv" || cfg.Output != "Post AG - Vorlage mit Absender.pdf" {
		t.Errorf("paths = %q, %q", cfg.Dataset, cfg.Output)
	}
	if cfg.FontRegular != "Arial.ttf" || cfg.FontBoldItalic != "Arialbi.ttf" {
		t.Errorf("fonts = %+v", cfg)
	}
	if cfg.Timezone != "CET" || cfg.Locale != "de_DE" || cfg.DateLayout != "02. January 2006" {
		t.Errorf("date settings = %q %q %q", cfg.Timezone, cfg.Locale, cfg.DateLayout)
	}
	if !cfg.Compress || cfg.Strict || cfg.ShowBorders {
		t.Errorf("flags = %+v", cfg)
	}
	if cfg.S3.Enabled() || cfg.S3.UploadTimeout != time.Minute {
		t.Errorf("s3 = %+v", cfg.S3)
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"POSTLETTER_DATASET":           "in.json",
		"POSTLETTER_LOCALE":            "de_AT",
		"POSTLETTER_STRICT":            "true",
		"POSTLETTER_S3_BUCKET":         "outgoing",
		"POSTLETTER_S3_UPLOAD_TIMEOUT": "30s",
		"DATASET":                      "ignored.csv",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Dataset != "in.json" || cfg.Locale != "de_AT" || !cfg.Strict {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.S3.Enabled() || cfg.S3.Bucket != "outgoing" || cfg.S3.UploadTimeout != 30*time.Second {
		t.Errorf("s3 = %+v", cfg.S3)
	}
}

func TestInvalidValue(t *testing.T) {
	if _, err := FromMap(map[string]string{"POSTLETTER_STRICT": "sometimes"}); err == nil {
		t.Fatal("expected error for invalid bool")
	}
}
