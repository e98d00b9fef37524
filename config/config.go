// Package config loads the settings of the postletter command from the
// environment. Variables carry the POSTLETTER_ prefix and may be placed in a
// .env file in the working directory:
//
//	POSTLETTER_DATASET=recipients.csv
//	POSTLETTER_FONT_DIR=/usr/share/fonts/truetype/msttcorefonts
//	POSTLETTER_S3_BUCKET=outgoing-mail
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "POSTLETTER_"

// Config is the full command configuration.
type Config struct {
	Dataset  string `env:"DATASET" envDefault:"dataset.csv"`
	Output   string `env:"OUTPUT" envDefault:"Post AG - Vorlage mit Absender.pdf"`
	Template string `env:"TEMPLATE"` // JSON letter texts, built-in sample when empty

	// Fonts are read from FontDir; the embedded Go fonts are used when it
	// is empty.
	FontDir        string `env:"FONT_DIR"`
	FontFamily     string `env:"FONT_FAMILY" envDefault:"Arial"`
	FontRegular    string `env:"FONT_REGULAR" envDefault:"Arial.ttf"`
	FontBold       string `env:"FONT_BOLD" envDefault:"Arialbd.ttf"`
	FontItalic     string `env:"FONT_ITALIC" envDefault:"Ariali.ttf"`
	FontBoldItalic string `env:"FONT_BOLD_ITALIC" envDefault:"Arialbi.ttf"`

	Timezone   string `env:"TIMEZONE" envDefault:"CET"`
	Locale     string `env:"LOCALE" envDefault:"de_DE"`
	DateLayout string `env:"DATE_LAYOUT" envDefault:"02. January 2006"`

	Title   string `env:"TITLE" envDefault:"Post AG - Vorlage mit Absender"`
	Author  string `env:"AUTHOR" envDefault:"Post AG"`
	Subject string `env:"SUBJECT"`

	ShowBorders  bool   `env:"SHOW_BORDERS"`
	Strict       bool   `env:"STRICT"`
	Compress     bool   `env:"COMPRESS" envDefault:"true"`
	InserterMark string `env:"INSERTER_MARK"` // datamatrix, qr or pdf417
	Letterhead   string `env:"LETTERHEAD"`    // PDF whose first page underlies every letter

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text or json

	S3 S3 `envPrefix:"S3_"`
}

// S3 configures publishing of the finished document. Publishing is off while
// Bucket is empty.
type S3 struct {
	Bucket         string        `env:"BUCKET"`
	Region         string        `env:"REGION" envDefault:"eu-central-1"`
	Prefix         string        `env:"PREFIX"`
	Endpoint       string        `env:"ENDPOINT"`
	AccessKeyID    string        `env:"ACCESS_KEY_ID"`
	SecretKey      string        `env:"SECRET_ACCESS_KEY"`
	ForcePathStyle bool          `env:"FORCE_PATH_STYLE"`
	UploadTimeout  time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"1m"`
}

// Enabled reports whether a bucket is configured.
func (s S3) Enabled() bool { return s.Bucket != "" }

// Load reads .env, if present, into the process environment and parses the
// configuration from it. Variables already set take precedence over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading .env: %w", err)
	}
	return parse(env.Options{Prefix: Prefix})
}

// FromMap parses the configuration from the given variables only.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
