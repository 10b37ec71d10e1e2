// Package featstream provides streaming ingestion of labeled feature
// vectors from delimited text files.
//
// A dataset file starts with a header that names every column; the
// first data row decides whether rows are dense (one value per column)
// or sparse (leading label/weight/name columns followed by ascending
// index:value tokens). The schema is inferred exactly once, then every
// row is parsed into an Example without re-reading the header.
//
// # Quick Start
//
//	import (
//	    "github.com/ajitpratap0/featstream/pkg/config"
//	    "github.com/ajitpratap0/featstream/pkg/textloader"
//	)
//
//	cfg := config.NewLoadConfig()
//	loader, err := textloader.Open("train.tsv", cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer loader.Close()
//
//	cursor := loader.Cursor()
//	for {
//	    example := cursor.Current()
//	    // ... use example.Features, example.Label, example.Weight
//	    if ok, err := cursor.MoveNext(); err != nil {
//	        log.Fatal(err)
//	    } else if !ok {
//	        break
//	    }
//	}
//
// # Packages
//
//   - pkg/textloader: loader, parsers, label map and cursor
//   - pkg/schema: header column layout
//   - pkg/vector: dense and sparse feature vectors
//   - pkg/config: load configuration with YAML support
//   - pkg/errors: structured error taxonomy
//   - pkg/logger: zap-based structured logging
//   - pkg/metrics: Prometheus metrics
package featstream
