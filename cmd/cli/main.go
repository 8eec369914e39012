package main

import (
	"fmt"
	"log"
	"os"

	"calfit/adapters/chart"
	"calfit/adapters/excel"
	"calfit/adapters/loader"
	"calfit/app"
	"calfit/internal"
	"calfit/internal/config"
	"calfit/internal/tree"
	"calfit/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "calfit",
		Short: "Calibration-curve fitting and directory outline utilities",
	}

	rootCmd.AddCommand(
		newFitCmd(),
		newTreeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newFitCmd() *cobra.Command {
	var outputDir string
	var noPlot bool
	var concurrency int

	cmd := &cobra.Command{
		Use:   "fit [files...]",
		Short: "Fit a least-squares line to (x, y) samples and derive calibration metrics",
		Long: `Fit a least-squares line through measured samples, report slope,
intercept, sensitivity and nonlinearity error, and save a scatter + fit-line
chart next to the report.

Input files hold one "x,y" pair per line; .csv and .xlsx files with two
numeric columns (optional header row) are accepted as well. Multiple files
are processed concurrently.

Example: calfit fit data/example_data.txt -o output`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}

			logger := internal.NewDefaultLogger()
			sheetReader := excel.NewDataReader()
			service := app.NewAnalysisService(
				map[string]ports.SampleReader{
					".csv":  sheetReader,
					".xlsx": sheetReader,
				},
				loader.NewTextReader(),
				chart.NewRenderer(),
				cfg,
				logger,
			)

			opts := app.AnalyzeOptions{NoPlot: noPlot, Concurrency: concurrency}
			if len(args) == 1 {
				report, err := service.Analyze(cmd.Context(), args[0], opts)
				if err != nil {
					return err
				}
				fmt.Print(report.Format(cfg.Report))
				return nil
			}

			batch, err := service.RunBatch(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			for _, report := range batch.Reports {
				fmt.Println(report.Format(cfg.Report))
			}
			if len(batch.Failures) > 0 {
				return fmt.Errorf("%d of %d files failed", len(batch.Failures), len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for charts (default: output/)")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "Skip chart rendering")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Max files processed in parallel")

	return cmd
}

func newTreeCmd() *cobra.Command {
	var depth int
	var output string
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "tree [root]",
		Short: "Serialize a directory hierarchy into a markdown outline",
		Long: `Walk a directory up to a maximum depth and emit its structure as a
markdown outline, with directories in bold and entries sorted by name.

Example: calfit tree . --depth 3 -o strct.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			outline, err := tree.Generate(root, depth)
			if err != nil {
				return err
			}

			out := []byte(tree.Document(outline))
			if asHTML {
				out = tree.ToHTML(string(out))
			}

			if output == "" {
				fmt.Print(string(out))
				return nil
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			internal.DefaultLogger.Info("outline written to %s", output)
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 3, "Maximum depth to descend")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the outline to a file instead of stdout")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Emit HTML instead of markdown")

	return cmd
}
