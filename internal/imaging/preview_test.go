package imaging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	payload, err := Process(bytes.NewReader(encodePNG(t, 32, 32)))
	require.NoError(t, err)

	preview, err := Preview(payload, 16, 8)
	require.NoError(t, err)
	assert.NotEmpty(t, preview)
	// Half-block rendering packs two pixel rows per text line.
	assert.LessOrEqual(t, len(strings.Split(preview, "\n")), 8)
}

func TestPreviewRejectsGarbage(t *testing.T) {
	_, err := Preview([]byte("not an image"), 16, 8)
	assert.Error(t, err)
}
