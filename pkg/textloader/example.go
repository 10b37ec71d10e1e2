// Package textloader implements streaming ingestion of labeled feature
// vectors from delimited text files. The header row fixes the column
// layout once; a probe of the first data row decides between the dense
// and sparse row formats; every following row is parsed into an Example
// without re-reading the header.
//
// A load produces a Cursor over the data rows. In streaming mode the
// cursor re-reads the file on Reset; in cached mode the whole dataset is
// materialized once and the file handle released.
package textloader

import (
	"github.com/ajitpratap0/featstream/pkg/vector"
)

// Example is one parsed data row. The parser allocates a fresh Example
// per line and the caller owns it from then on.
type Example struct {
	// Features is the dense or sparse feature vector
	Features vector.Vector
	// Label is the numeric training target
	Label float32
	// Weight is the example weight, 1.0 when no weight column exists
	Weight float32
	// Name is the verbatim name column text, empty when no name column
	// is configured
	Name string
}
