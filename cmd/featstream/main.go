package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/featstream/pkg/config"
	"github.com/ajitpratap0/featstream/pkg/logger"
	"github.com/ajitpratap0/featstream/pkg/textloader"
	"github.com/ajitpratap0/featstream/pkg/vector"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	var logLevel string
	var configFile string
	flags := newLoadFlags()

	root := &cobra.Command{
		Use:   "featstream",
		Short: "featstream - streaming loader for labeled feature vector files",
		Long: `featstream reads delimited text datasets of labeled feature vectors.
The header fixes the schema once; the first data row decides between the
dense and sparse row formats; every row becomes a parsed example.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{
				Level:    logLevel,
				Encoding: "console",
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML load configuration file")
	flags.register(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("featstream v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	inspectCmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the inferred schema and example count of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, configFile, flags)
			if err != nil {
				return err
			}
			return runInspect(args[0], cfg)
		},
	}
	root.AddCommand(inspectCmd)

	var headCount int
	headCmd := &cobra.Command{
		Use:   "head <file>",
		Short: "Print the first examples of a dataset as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, configFile, flags)
			if err != nil {
				return err
			}
			return runHead(args[0], cfg, headCount)
		},
	}
	headCmd.Flags().IntVarP(&headCount, "count", "n", 10, "Number of examples to print")
	root.AddCommand(headCmd)

	root.AddCommand(&cobra.Command{
		Use:   "labelmap <file>",
		Short: "Validate a label map file and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelMap(args[0])
		},
	})

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func runInspect(path string, cfg *config.LoadConfig) error {
	loader, err := textloader.Open(path, cfg)
	if err != nil {
		return err
	}
	defer loader.Close()

	count := loader.Cursor().Len()
	if count < 0 {
		// streaming mode: a full pass is the only way to count
		count = 1
		for {
			ok, err := loader.Cursor().MoveNext()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			count++
		}
	}

	layout := loader.Layout()
	return printJSON(map[string]interface{}{
		"file":          loader.Path(),
		"format":        formatName(loader.IsSparse()),
		"columns":       layout.NumColumns(),
		"dimension":     layout.Dimension(),
		"feature_names": layout.FeatureNames(),
		"label_column":  layout.LabelColumn(),
		"weight_column": layout.WeightColumn(),
		"name_column":   layout.NameColumn(),
		"examples":      count,
		"cached":        loader.Cursor().Cached(),
	})
}

func runHead(path string, cfg *config.LoadConfig, count int) error {
	loader, err := textloader.Open(path, cfg)
	if err != nil {
		return err
	}
	defer loader.Close()

	cursor := loader.Cursor()
	hasName := loader.Layout().HasName()
	for i := 0; i < count; i++ {
		if err := printJSON(exampleView(cursor.Current(), loader.IsSparse(), hasName)); err != nil {
			return err
		}
		ok, err := cursor.MoveNext()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

func runLabelMap(path string) error {
	m, err := textloader.LoadLabelMap(path)
	if err != nil {
		return err
	}
	return printJSON(m)
}

func formatName(sparse bool) string {
	if sparse {
		return "sparse"
	}
	return "dense"
}

func exampleView(ex *textloader.Example, sparse, hasName bool) map[string]interface{} {
	view := map[string]interface{}{
		"label":  ex.Label,
		"weight": ex.Weight,
	}
	if hasName {
		view["name"] = ex.Name
	}
	if sparse {
		view["dimension"] = ex.Features.Dim()
		view["features"] = sparseEntries(ex)
	} else {
		view["features"] = ex.Features.ToDense()
	}
	return view
}

func sparseEntries(ex *textloader.Example) []map[string]interface{} {
	sp, ok := ex.Features.(*vector.Sparse)
	if !ok {
		return nil
	}
	entries := make([]map[string]interface{}, sp.Nnz())
	for i, idx := range sp.Indices() {
		entries[i] = map[string]interface{}{"index": idx, "value": sp.Values()[i]}
	}
	return entries
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
