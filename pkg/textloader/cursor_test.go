package textloader

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/featstream/pkg/config"
	"github.com/ajitpratap0/featstream/pkg/errors"
)

func drain(t *testing.T, c *Cursor) []*Example {
	t.Helper()
	out := []*Example{c.Current()}
	for {
		ok, err := c.MoveNext()
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, c.Current())
	}
	return out
}

func TestCursorStreaming(t *testing.T) {
	loader := openFixture(t, denseFixture, func(c *config.LoadConfig) { c.CacheAll = false })
	cursor := loader.Cursor()

	assert.False(t, cursor.Cached())
	assert.Equal(t, -1, cursor.Len())

	examples := drain(t, cursor)
	require.Len(t, examples, 2)
	assert.Equal(t, float32(1), examples[0].Label)
	assert.Equal(t, float32(0), examples[1].Label)

	// exhaustion latches
	ok, err := cursor.MoveNext()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCursorCached(t *testing.T) {
	loader := openFixture(t, denseFixture, nil)
	cursor := loader.Cursor()

	assert.True(t, cursor.Cached())
	assert.Equal(t, 2, cursor.Len())

	examples := drain(t, cursor)
	require.Len(t, examples, 2)

	// cached Reset repositions without disk I/O; the handle is gone
	require.NoError(t, cursor.Reset())
	assert.Same(t, examples[0], cursor.Current())
}

func TestCursorResetReturnsFirstRow(t *testing.T) {
	for _, cached := range []bool{true, false} {
		name := "streaming"
		if cached {
			name = "cached"
		}
		t.Run(name, func(t *testing.T) {
			loader := openFixture(t, denseFixture, func(c *config.LoadConfig) { c.CacheAll = cached })
			cursor := loader.Cursor()

			first := cursor.Current()
			require.NotNil(t, first)

			for i := 0; i < 3; i++ {
				_, err := cursor.MoveNext()
				require.NoError(t, err)
			}

			require.NoError(t, cursor.Reset())
			got := cursor.Current()
			assert.Equal(t, first.Label, got.Label)
			assert.Equal(t, first.Weight, got.Weight)
			assert.Equal(t, first.Name, got.Name)
			assert.Equal(t, first.Features.ToDense(), got.Features.ToDense())
		})
	}
}

func TestCursorResetThenIterateAgain(t *testing.T) {
	loader := openFixture(t, sparseFixture, func(c *config.LoadConfig) {
		c.NameColumn = 1
		c.CacheAll = false
	})
	cursor := loader.Cursor()

	firstPass := drain(t, cursor)
	require.NoError(t, cursor.Reset())
	secondPass := drain(t, cursor)

	require.Len(t, secondPass, len(firstPass))
	for i := range firstPass {
		assert.Equal(t, firstPass[i].Name, secondPass[i].Name)
		assert.Equal(t, firstPass[i].Features.ToDense(), secondPass[i].Features.ToDense())
	}
}

func TestCursorMidFileParseError(t *testing.T) {
	content := "label\tf1\tf2\n1\t0.5\t0.25\n1\t0.5\toops\n"
	loader := openFixture(t, content, func(c *config.LoadConfig) { c.CacheAll = false })
	cursor := loader.Cursor()

	_, err := cursor.MoveNext()
	require.Error(t, err)
}

func TestCacheAllFailsOnMalformedRow(t *testing.T) {
	content := "label\tf1\tf2\n1\t0.5\t0.25\n1\t0.5\toops\n"
	path := writeFile(t, "data.tsv", content)

	_, err := Open(path, config.NewLoadConfig())
	require.Error(t, err)
}

func TestCursorCloseIdempotent(t *testing.T) {
	loader := openFixture(t, denseFixture, func(c *config.LoadConfig) { c.CacheAll = false })

	require.NoError(t, loader.Close())
	require.NoError(t, loader.Close())

	// cached cursors released their handle during the drain
	cached := openFixture(t, denseFixture, nil)
	require.NoError(t, cached.Close())
	require.NoError(t, cached.Close())
}

func TestCacheAfterMoveNextStartsAtFirstRow(t *testing.T) {
	loader := openFixture(t, denseFixture, func(c *config.LoadConfig) { c.CacheAll = false })
	cursor := loader.Cursor()

	ok, err := cursor.MoveNext()
	require.NoError(t, err)
	require.True(t, ok)

	// materializing mid-iteration must not lose the rows already read
	require.NoError(t, cursor.Cache())
	assert.Equal(t, 2, cursor.Len())
	assert.Equal(t, float32(1), cursor.Current().Label)

	require.NoError(t, cursor.Reset())
	assert.Equal(t, float32(1), cursor.Current().Label)
	assert.Equal(t, []float32{0.5, 0.25}, cursor.Current().Features.ToDense())
}

func TestResetAfterFileTruncated(t *testing.T) {
	path := writeFile(t, "data.tsv", denseFixture)
	cfg := config.NewLoadConfig()
	cfg.CacheAll = false
	loader, err := Open(path, cfg)
	require.NoError(t, err)
	defer loader.Close()

	// the probe guaranteed a first data row; pulling it out from under
	// the cursor is an invariant violation, not a format error
	require.NoError(t, os.Truncate(path, 0))

	err = loader.Cursor().Reset()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvariant), "got %v", err)
}

func TestCachedCursorSurvivesExhaustionAndReset(t *testing.T) {
	loader := openFixture(t, denseFixture, nil)
	cursor := loader.Cursor()

	for i := 0; i < 2; i++ {
		examples := drain(t, cursor)
		assert.Len(t, examples, 2)

		ok, err := cursor.MoveNext()
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, cursor.Reset())
	}
}
