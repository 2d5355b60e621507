package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/updatesheet/core/output"
	"github.com/gaurav-prasanna/updatesheet/core/pdf"
)

var pricelistFlags struct {
	debug    bool
	patterns string
	output   string
}

var pricelistCmd = &cobra.Command{
	Use:   "pricelist <file.pdf>",
	Short: "Convert a price-list PDF into a workbook",
	Long: `Pricelist reads a fixed-layout price-list PDF, groups its text into lines,
and writes one row per priced item to <file>.xlsx next to the PDF.

Line patterns come from pricelist.config, looked up in --patterns, then the
working directory, then the directory of the executable.

Examples:
  updatesheet pricelist prices.pdf
  updatesheet pricelist prices.pdf -debug`,
	Args: cobra.ExactArgs(1),
	RunE: runPriceList,
}

func init() {
	rootCmd.AddCommand(pricelistCmd)

	pricelistCmd.Flags().BoolVar(&pricelistFlags.debug, "debug", false, "Add a Raw Lines sheet with every segmented line")
	pricelistCmd.Flags().StringVar(&pricelistFlags.patterns, "patterns", "", "Pattern config file (default pricelist.config)")
	pricelistCmd.Flags().StringVar(&pricelistFlags.output, "output", "", "Workbook path (default: PDF path with .xlsx)")
}

func runPriceList(cmd *cobra.Command, args []string) error {
	out := pricelistFlags.output
	if out == "" {
		out = output.PriceListPath(args[0])
	}
	_, err := convertPriceList(args[0], pricelistFlags.patterns, out, pricelistFlags.debug, slog.Default())
	return err
}

// convertPriceList runs the PDF pipeline and returns the number of items written.
func convertPriceList(pdfPath, patternsPath, outPath string, debug bool, logger *slog.Logger) (int, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return 0, fmt.Errorf("PDF file not found: %s", pdfPath)
	}

	cfgPath, err := pdf.LocateConfig(patternsPath)
	if err != nil {
		return 0, err
	}
	patterns, err := pdf.LoadPatterns(cfgPath)
	if err != nil {
		return 0, err
	}
	logger.Debug("loaded patterns", "path", cfgPath)

	pages, err := pdf.ReadPages(pdfPath)
	if err != nil {
		return 0, err
	}
	logger.Info("read PDF", "path", pdfPath, "pages", len(pages))

	machine := pdf.NewMachine(patterns, logger)
	for _, p := range pages {
		machine.FeedPage(p)
	}
	items, raw := machine.Finish()

	if err := output.WritePriceList(outPath, items, raw, debug); err != nil {
		return 0, err
	}
	logger.Info("price list written", "path", outPath, "items", len(items), "lines", len(raw))
	return len(items), nil
}
