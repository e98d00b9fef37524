// Command postletter renders one window-envelope letter page per recipient of
// a CSV or JSON dataset into a single PDF.
//
//	postletter -dataset recipients.csv -out letters.pdf
//
// Settings are read from POSTLETTER_* environment variables and an optional
// .env file; the flags below override them. With POSTLETTER_S3_BUCKET set the
// finished PDF is also uploaded.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/lvillar/postletter"
	"github.com/lvillar/postletter/config"
	"github.com/lvillar/postletter/internal/logger"
	"github.com/lvillar/postletter/output"
	"github.com/lvillar/postletter/recipient"
	"github.com/lvillar/postletter/template"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "postletter: %v\n", err)
		os.Exit(2)
	}
	if err := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "postletter: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) error {
	fset := flag.NewFlagSet("postletter", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "recipient dataset (.csv or .json)")
	fset.StringVar(&cfg.Output, "out", cfg.Output, "output PDF path")
	fset.StringVar(&cfg.Template, "template", cfg.Template, "JSON file with the letter texts")
	fset.StringVar(&cfg.FontDir, "fonts", cfg.FontDir, "directory with the four TrueType variants, embedded Go fonts if empty")
	fset.StringVar(&cfg.InserterMark, "mark", cfg.InserterMark, "inserter mark: datamatrix, qr or pdf417")
	fset.StringVar(&cfg.Letterhead, "letterhead", cfg.Letterhead, "PDF placed under every page")
	fset.BoolVar(&cfg.Strict, "strict", cfg.Strict, "stop at the first invalid record instead of skipping it")
	fset.BoolVar(&cfg.ShowBorders, "borders", cfg.ShowBorders, "outline the text regions")
	noClobber := fset.Bool("no-clobber", false, "fail if the output file exists")
	if err := fset.Parse(args); err != nil {
		return err
	}

	log, err := logger.New(stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	start := time.Now()

	opts, err := options(cfg, log)
	if err != nil {
		return err
	}
	records, err := recipient.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	log.Info("dataset loaded", slog.String("path", cfg.Dataset), logger.Count("records", len(records)))

	r, err := postletter.New(opts...)
	if err != nil {
		return err
	}
	doc, err := r.Render(records)
	if err != nil {
		return err
	}

	if *noClobber {
		err = doc.Create(cfg.Output)
	} else {
		err = doc.Finalize(cfg.Output)
	}
	if err != nil {
		return err
	}

	if cfg.S3.Enabled() {
		pub, err := output.NewS3(ctx, output.S3Config{
			Bucket:         cfg.S3.Bucket,
			Region:         cfg.S3.Region,
			Prefix:         cfg.S3.Prefix,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		}, output.WithUploadTimeout(cfg.S3.UploadTimeout))
		if err != nil {
			return err
		}
		key := filepath.Base(cfg.Output)
		if err := doc.Publish(ctx, pub, key); err != nil {
			return err
		}
		log.Info("document published", slog.String("bucket", cfg.S3.Bucket), slog.String("key", pub.Key(key)))
	}

	rep := doc.Report()
	log.Info("done", slog.String("path", cfg.Output), slog.String("run_id", rep.RunID), logger.Elapsed(start))
	fmt.Fprintf(stdout, "%s: %s\n", cfg.Output, rep)
	for _, s := range rep.Skipped {
		fmt.Fprintf(stdout, "  record %d skipped: %v\n", s.Record, s.Err)
	}
	return nil
}

func options(cfg config.Config, log *slog.Logger) ([]postletter.Option, error) {
	tpl := template.Default()
	if cfg.Template != "" {
		var err error
		if tpl, err = template.Load(cfg.Template); err != nil {
			return nil, &postletter.Error{Op: "LoadTemplate", Kind: postletter.ErrResource, Err: err}
		}
	}
	mark, err := postletter.ParseSymbology(cfg.InserterMark)
	if err != nil {
		return nil, err
	}

	opts := []postletter.Option{
		postletter.WithTemplate(tpl),
		postletter.WithMetadata(postletter.Metadata{Title: cfg.Title, Author: cfg.Author, Subject: cfg.Subject}),
		postletter.WithTimezone(cfg.Timezone),
		postletter.WithLocale(cfg.Locale),
		postletter.WithDateLayout(cfg.DateLayout),
		postletter.WithShowBorders(cfg.ShowBorders),
		postletter.WithStrict(cfg.Strict),
		postletter.WithCompression(cfg.Compress),
		postletter.WithInserterMark(mark),
		postletter.WithLogger(log),
	}
	if cfg.FontDir != "" {
		opts = append(opts, postletter.WithFontDir(cfg.FontDir, postletter.FontFiles{
			Family:     cfg.FontFamily,
			Regular:    cfg.FontRegular,
			Bold:       cfg.FontBold,
			Italic:     cfg.FontItalic,
			BoldItalic: cfg.FontBoldItalic,
		}))
	}
	if cfg.Letterhead != "" {
		opts = append(opts, postletter.WithLetterhead(cfg.Letterhead))
	}
	return opts, nil
}
