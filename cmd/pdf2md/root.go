package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/adhipk/pdf-to-md/poppler"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pdf2md",
	Short: "Convert PDF documents to plain text, Markdown, or HTML",
	Long: `pdf2md converts PDF documents to structured plain text, Markdown, or a
standalone HTML page.

It drives the poppler command line tools (pdftohtml, pdftotext, pdftoppm)
for raw extraction, reconstructs reading order, lines, and blocks from the
positioned text, and classifies the result into headings, list items, and
paragraphs. XML layout dumps produced earlier with pdftohtml -xml are
accepted directly and need no poppler tools.

Use pdf2md convert to produce output and pdf2md info to inspect a document.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file (default pdf2md.yaml in . or ~/.config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(infoCmd)
}

// loadConfig reads the optional config file. A file named with --config
// must exist; the default search is best-effort.
func loadConfig(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("pdf2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config"))
		}
	}
	viper.SetEnvPrefix("PDF2MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// engineFromConfig builds the poppler engine from the config file's
// engine section, falling back to the defaults for anything unset.
//
//	engine:
//	  pdftohtml: /opt/poppler/bin/pdftohtml
//	  dpi: 600
func engineFromConfig() *poppler.Engine {
	cfg := poppler.DefaultConfig()
	if v := viper.GetString("engine.pdftohtml"); v != "" {
		cfg.PDFToHTML = v
	}
	if v := viper.GetString("engine.pdftotext"); v != "" {
		cfg.PDFToText = v
	}
	if v := viper.GetString("engine.pdftoppm"); v != "" {
		cfg.PDFToPPM = v
	}
	if v := viper.GetInt("engine.dpi"); v > 0 {
		cfg.DPI = v
	}
	return poppler.NewWithConfig(cfg)
}

// newLogger creates the CLI logger: a development logger at debug level
// when --verbose is set, otherwise a production logger that only surfaces
// warnings.
func newLogger() *zap.Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	return logger
}

// usageError marks errors caused by bad invocation rather than by the
// conversion itself, so main can exit 2 instead of 1.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

func isUsageError(err error) bool {
	var ue usageError
	return errors.As(err, &ue)
}

// exactArgs is cobra.ExactArgs with the error classified as usage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// installHint decorates engine-missing errors with the package to
// install.
func installHint(err error) error {
	if errors.Is(err, poppler.ErrNotFound) {
		return fmt.Errorf("%w (install poppler-utils: apt install poppler-utils, or brew install poppler)", err)
	}
	return err
}
