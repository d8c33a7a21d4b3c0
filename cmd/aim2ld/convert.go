package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ldconv/ldconv"
	"github.com/ldconv/ldconv/compress"
	"github.com/ldconv/ldconv/csvlog"
	"github.com/ldconv/ldconv/internal/cliconfig"
	"github.com/ldconv/ldconv/ldlog"
	"github.com/ldconv/ldconv/logging"
)

const ldExt = ".ld"

// defaultOutput derives the .ld path next to src, dropping any compression suffix.
func defaultOutput(src string) string {
	_, base := compress.Detect(src)
	return replaceExt(base)
}

// outputIn places the .ld file for src inside dir.
func outputIn(dir, src string) string {
	return filepath.Join(dir, filepath.Base(defaultOutput(src)))
}

func replaceExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ldExt
}

// resolveOutput returns the destination of a single conversion.
func resolveOutput(src, output string) string {
	if output == "" {
		return defaultOutput(src)
	}

	return replaceExt(output)
}

func ensureDir(dir string, logger logging.Logger) error {
	if dir == "" || dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	logger.Info("created output directory", logging.String("dir", dir))

	return nil
}

// convertFile parses the source log at src and writes it to dst as an .ld file.
func convertFile(ctx context.Context, src, dst string, cfg cliconfig.Config, logger logging.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("input log: %w", err)
	}

	source, err := csvlog.ParseFile(src,
		csvlog.WithLogger(logger),
		csvlog.WithFrequency(cfg.Frequency),
	)
	if err != nil {
		return fmt.Errorf("parse %s: %w", src, err)
	}

	ld, err := ldconv.FromCSV(source, append(cfg.LogOptions(), ldlog.WithLogger(logger))...)
	if err != nil {
		return err
	}

	if err := ensureDir(filepath.Dir(dst), logger); err != nil {
		return err
	}

	return ld.WriteFile(dst)
}
