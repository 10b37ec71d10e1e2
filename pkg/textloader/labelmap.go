package textloader

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/ajitpratap0/featstream/pkg/errors"
)

// LabelMap translates textual label tokens into numeric training
// targets. An empty map means labels are plain float literals.
type LabelMap map[string]float32

// LoadLabelMap reads a label map file. The file is tab-separated text
// with no header, in one of two shapes:
//
//   - one column: every line is a bare key, assigned 0, 1, 2, ... in
//     file order; duplicate keys are a format error
//   - two columns: every line is key<TAB>value with a float value
//
// An empty path yields an empty map.
func LoadLabelMap(path string) (LabelMap, error) {
	if strings.TrimSpace(path) == "" {
		return LabelMap{}, nil
	}

	f, err := os.Open(path) //nolint:gosec // G304: path is caller-supplied configuration
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeArgument, "can't read label map file")
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed reading label map file")
	}

	if len(lines) <= 1 {
		return nil, errors.New(errors.ErrorTypeFormat, "label map file must contain more than 1 line")
	}
	if strings.Count(lines[0], "\t") > 1 {
		return nil, errors.New(errors.ErrorTypeFormat, "label map file can't have more than 2 columns")
	}

	m := make(LabelMap, len(lines))

	if !strings.Contains(lines[0], "\t") {
		// enumeration form: keys get sequential values in file order
		for i, key := range lines {
			if _, exists := m[key]; exists {
				return nil, errors.Newf(errors.ErrorTypeFormat, "duplicate key %q in label map file", key)
			}
			m[key] = float32(i)
		}
		return m, nil
	}

	for _, line := range lines {
		key, raw, found := strings.Cut(line, "\t")
		if !found || strings.Contains(raw, "\t") {
			return nil, errors.New(errors.ErrorTypeFormat, "incorrect number of columns in label map file")
		}
		value, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat, "invalid label map file format").WithDetail("line", line)
		}
		m[key] = float32(value)
	}
	return m, nil
}

// Resolve maps a label token to its numeric value. Lookup of an unknown
// key is a format error, never a silent default.
func (m LabelMap) Resolve(key string) (float32, error) {
	v, ok := m[key]
	if !ok {
		return 0, errors.Newf(errors.ErrorTypeFormat, "label %q not found in label map", key)
	}
	return v, nil
}
