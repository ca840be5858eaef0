package loggen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-log-analyzer/internal/logparse"
)

func TestWriteEmitsParseableLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Options{Lines: 50, Seed: 1}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 50)

	for _, line := range lines {
		fields, ok := logparse.ParseLine(line)
		require.True(t, ok, "line %q should parse", line)

		_, known := logparse.NormalizeLevel(fields.Level)
		assert.True(t, known, "level %q should be recognized", fields.Level)

		_, err := logparse.ParseTimestamp(fields.Timestamp)
		assert.NoError(t, err, "timestamp %q should parse", fields.Timestamp)

		assert.True(t, strings.HasPrefix(fields.Source, "192.168.1."))
	}
}

func TestWriteIsReproducibleForSeed(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, Options{Lines: 20, Seed: 99}))
	require.NoError(t, Write(&b, Options{Lines: 20, Seed: 99}))
	assert.Equal(t, a.String(), b.String())
}
