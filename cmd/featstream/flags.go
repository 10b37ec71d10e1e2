package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajitpratap0/featstream/pkg/config"
)

// loadFlags mirrors config.LoadConfig on the command line. Flags only
// override a value the user actually set, so a --config file and flags
// compose.
type loadFlags struct {
	separator string
	labelCol  int
	weightCol int
	nameCol   int
	labelMap  string
	cache     bool
}

func newLoadFlags() *loadFlags {
	defaults := config.NewLoadConfig()
	return &loadFlags{
		separator: defaults.Separator,
		labelCol:  defaults.LabelColumn,
		weightCol: defaults.WeightColumn,
		nameCol:   defaults.NameColumn,
		cache:     defaults.CacheAll,
	}
}

func (f *loadFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.separator, "separator", f.separator, "Column separator character")
	fs.IntVar(&f.labelCol, "label-col", f.labelCol, "Label column index (-1 to infer)")
	fs.IntVar(&f.weightCol, "weight-col", f.weightCol, "Weight column index (-1 for none)")
	fs.IntVar(&f.nameCol, "name-col", f.nameCol, "Name column index (-1 for none)")
	fs.StringVar(&f.labelMap, "label-map", f.labelMap, "Label map file path")
	fs.BoolVar(&f.cache, "cache", f.cache, "Materialize the whole dataset in memory")
}

// buildConfig resolves the effective LoadConfig: defaults, then the
// optional YAML file, then explicitly set flags.
func buildConfig(cmd *cobra.Command, configFile string, f *loadFlags) (*config.LoadConfig, error) {
	cfg := config.NewLoadConfig()
	if configFile != "" {
		if err := config.Load(configFile, cfg); err != nil {
			return nil, err
		}
	}

	set := cmd.Flags()
	if set.Changed("separator") {
		cfg.Separator = f.separator
	}
	if set.Changed("label-col") {
		cfg.LabelColumn = f.labelCol
	}
	if set.Changed("weight-col") {
		cfg.WeightColumn = f.weightCol
	}
	if set.Changed("name-col") {
		cfg.NameColumn = f.nameCol
	}
	if set.Changed("label-map") {
		cfg.LabelMapFile = f.labelMap
	}
	if set.Changed("cache") {
		cfg.CacheAll = f.cache
	}
	return cfg, nil
}
