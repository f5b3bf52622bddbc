package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pdftomd "github.com/adhipk/pdf-to-md"
	"github.com/adhipk/pdf-to-md/layout"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Show page count, text statistics, and detected layout",
	Long: `Inspect a PDF or pdftohtml XML dump without converting it: page count,
line and character counts, and a per-page summary of the detected layout
(columns, headings, list items).`,
	Args: exactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	conv := pdftomd.Open(args[0]).WithEngine(engineFromConfig())

	doc, _, err := conv.Document(ctx)
	if err != nil {
		return installHint(err)
	}
	stats, warnings, err := conv.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Println("File:    ", args[0])
	if doc.Producer != "" {
		fmt.Println("Producer:", doc.Producer)
	}
	fmt.Println("Pages:   ", stats.Pages)
	fmt.Println("Lines:   ", stats.Lines)
	fmt.Println("Chars:   ", stats.Chars)
	fmt.Println()

	for _, page := range doc.Pages {
		res := layout.AnalyzePage(page)
		cols := 1
		if res.TwoColumn {
			cols = 2
		}
		fmt.Printf("page %d: %d runs, %d column(s), %d heading(s), %d list item(s)\n",
			page.Number, len(page.Runs), cols, res.HeadingCount(), res.ListItemCount())
	}

	for _, w := range warnings {
		logger.Warn(w.Message, zap.Int("page", w.Page))
	}
	return nil
}
