package textloader

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/ajitpratap0/featstream/pkg/errors"
	"github.com/ajitpratap0/featstream/pkg/metrics"
)

// Cursor is the resumable read position over a loaded dataset. Exactly
// one example is current at any time. Not safe for concurrent use: it
// owns the file position (streaming mode) or the cache index (cached
// mode) exclusively.
type Cursor struct {
	file      *os.File
	reader    *bufio.Reader
	parser    *ExampleParser
	dataStart int64
	format    string // dense or sparse, metrics label

	current   *Example
	cache     []*Example
	cacheIdx  int
	exhausted bool
}

// newCursor positions the cursor at the first data row. The loader's
// probe guaranteed that row exists.
func newCursor(file *os.File, dataStart int64, parser *ExampleParser, format string) (*Cursor, error) {
	c := &Cursor{
		file:      file,
		parser:    parser,
		dataStart: dataStart,
		format:    format,
	}
	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset rewinds to the first data row. In streaming mode this seeks the
// file and re-parses the first row; in cached mode it repoints into the
// cache with no I/O. The previously current example is discarded.
func (c *Cursor) Reset() error {
	if c.cached() {
		c.cacheIdx = 0
		c.current = c.cache[0]
		c.exhausted = false
		return nil
	}

	if _, err := c.file.Seek(c.dataStart, io.SeekStart); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to seek to first data row")
	}
	c.reader = bufio.NewReader(c.file)
	c.exhausted = false

	line, ok, err := readLine(c.reader)
	if err != nil {
		return err
	}
	if !ok {
		// the probe row existed at load time; the file changed under us
		return errors.New(errors.ErrorTypeInvariant, "first data row disappeared after load")
	}
	return c.parse(line)
}

// MoveNext advances to the next example. It returns false with a nil
// error on exhaustion; after that it keeps returning false.
func (c *Cursor) MoveNext() (bool, error) {
	if c.cached() {
		if c.cacheIdx+1 >= len(c.cache) {
			c.exhausted = true
			return false, nil
		}
		c.cacheIdx++
		c.current = c.cache[c.cacheIdx]
		return true, nil
	}

	if c.exhausted {
		return false, nil
	}
	line, ok, err := readLine(c.reader)
	if err != nil {
		return false, err
	}
	if !ok {
		c.exhausted = true
		return false, nil
	}
	if err := c.parse(line); err != nil {
		return false, err
	}
	return true, nil
}

// Current returns the example at the cursor position. The caller owns
// the returned example; the cursor never touches it again in streaming
// mode.
func (c *Cursor) Current() *Example {
	return c.current
}

// Cached reports whether the dataset is fully materialized in memory.
func (c *Cursor) Cached() bool {
	return c.cached()
}

// Len returns the number of materialized examples, or -1 in streaming
// mode where the count is unknown without a full pass.
func (c *Cursor) Len() int {
	if c.cached() {
		return len(c.cache)
	}
	return -1
}

// Cache materializes the whole dataset in memory, then releases the
// file handle and leaves the cursor on the first cached example. It
// may be called at any point of an iteration; the drain always starts
// from the first data row.
func (c *Cursor) Cache() error {
	if c.cached() {
		return nil
	}

	if err := c.Reset(); err != nil {
		return err
	}

	cache := []*Example{c.current}
	for {
		ok, err := c.MoveNext()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		cache = append(cache, c.current)
	}

	if err := c.Close(); err != nil {
		return err
	}
	c.cache = cache
	c.cacheIdx = 0
	c.current = cache[0]
	c.exhausted = false

	metrics.ExamplesCached.Set(float64(len(cache)))
	return nil
}

// Close releases the file handle. It is safe to call more than once and
// on a cursor whose handle was already released by Cache.
func (c *Cursor) Close() error {
	if c.file == nil {
		return nil
	}
	err := c.file.Close()
	c.file = nil
	c.reader = nil
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to close data file")
	}
	return nil
}

func (c *Cursor) cached() bool {
	return len(c.cache) > 0
}

func (c *Cursor) parse(line string) error {
	example, err := c.parser.Parse(line)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			metrics.ParseErrors.WithLabelValues(string(e.Type)).Inc()
		}
		return err
	}
	c.current = example
	metrics.LinesParsed.WithLabelValues(c.format).Inc()
	return nil
}

// readLine reads one line, tolerating \r\n endings and a missing final
// newline. ok is false at end of input.
func readLine(r *bufio.Reader) (line string, ok bool, err error) {
	raw, err := r.ReadString('\n')
	if err == io.EOF {
		if raw == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrorTypeFile, "failed reading data file")
	}
	return strings.TrimRight(raw, "\r\n"), true, nil
}
