package textloader

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ajitpratap0/featstream/pkg/config"
	"github.com/ajitpratap0/featstream/pkg/errors"
	"github.com/ajitpratap0/featstream/pkg/logger"
	"github.com/ajitpratap0/featstream/pkg/metrics"
	"github.com/ajitpratap0/featstream/pkg/schema"
)

// commentPrefix marks lines skipped before the header.
const commentPrefix = "//"

// Loader owns the result of a load: the inferred column layout, the
// dense/sparse decision, and the cursor over the data rows.
type Loader struct {
	path   string
	layout *schema.ColumnLayout
	cursor *Cursor
	sparse bool
}

// Open reads and validates the header of the file at path, infers the
// column layout, probes the first data row to decide dense vs sparse,
// and positions a cursor at that row. With cfg.CacheAll the whole
// dataset is materialized before Open returns and the file handle is
// released.
func Open(path string, cfg *config.LoadConfig) (*Loader, error) {
	if cfg == nil {
		cfg = config.NewLoadConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeArgument, "invalid load configuration")
	}

	timer := metrics.NewTimer()

	file, err := os.Open(path) //nolint:gosec // G304: path is caller-supplied configuration
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeArgument, "can't locate or read data file")
	}

	loader, err := load(file, path, cfg)
	if err != nil {
		file.Close()
		return nil, err
	}

	timer.ObserveLoad()

	logger.Info("dataset loaded",
		zap.String("file", path),
		zap.Int("columns", loader.layout.NumColumns()),
		zap.Int("dimension", loader.layout.Dimension()),
		zap.String("format", loader.format()),
		zap.Bool("cached", loader.cursor.Cached()))

	return loader, nil
}

func load(file *os.File, path string, cfg *config.LoadConfig) (*Loader, error) {
	separator := cfg.Separator
	reader := bufio.NewReader(file)

	header, offset, err := readHeader(reader, path)
	if err != nil {
		return nil, err
	}

	cols := strings.Split(header, separator)
	layout, err := schema.Infer(cols, cfg.LabelColumn, cfg.WeightColumn, cfg.NameColumn)
	if err != nil {
		return nil, err
	}

	// probe the first data row to decide the format
	dataStart := offset
	probe, ok, err := readLine(reader)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeFormat, "%s has no data rows", path)
	}
	probeCols := len(strings.Split(probe, separator))
	if probeCols > layout.NumColumns() {
		return nil, errors.Newf(errors.ErrorTypeFormat, "first data row has %d columns, header has %d",
			probeCols, layout.NumColumns())
	}
	sparse := probeCols < layout.NumColumns()

	labelMap, err := LoadLabelMap(cfg.LabelMapFile)
	if err != nil {
		return nil, err
	}

	var features featureParser
	if sparse {
		if features, err = newSparseParser(layout); err != nil {
			return nil, err
		}
	} else {
		features = newDenseParser(layout)
	}

	parser := &ExampleParser{
		layout:    layout,
		separator: separator,
		labelMap:  labelMap,
		features:  features,
	}

	loader := &Loader{path: path, layout: layout, sparse: sparse}
	if loader.cursor, err = newCursor(file, dataStart, parser, loader.format()); err != nil {
		return nil, err
	}

	if cfg.CacheAll {
		if err := loader.cursor.Cache(); err != nil {
			return nil, err
		}
	}
	return loader, nil
}

// readHeader skips blank and comment lines, returning the header line
// and the byte offset of the row that follows it.
func readHeader(reader *bufio.Reader, path string) (string, int64, error) {
	var offset int64
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", 0, errors.Wrap(err, errors.ErrorTypeFile, "failed reading data file")
		}
		offset += int64(len(raw))

		line := strings.TrimSpace(raw)
		if line != "" && !strings.HasPrefix(line, commentPrefix) {
			return line, offset, nil
		}
		if err == io.EOF {
			return "", 0, errors.Newf(errors.ErrorTypeFormat, "%s doesn't contain any data", path)
		}
	}
}

// Layout returns the inferred column layout.
func (l *Loader) Layout() *schema.ColumnLayout { return l.layout }

// Cursor returns the cursor over the data rows.
func (l *Loader) Cursor() *Cursor { return l.cursor }

// IsSparse reports whether the probe classified the file as sparse.
func (l *Loader) IsSparse() bool { return l.sparse }

// Path returns the data file path.
func (l *Loader) Path() string { return l.path }

// Close releases the cursor's file handle.
func (l *Loader) Close() error { return l.cursor.Close() }

func (l *Loader) format() string {
	if l.sparse {
		return "sparse"
	}
	return "dense"
}
