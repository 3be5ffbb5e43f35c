package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewStateString(t *testing.T) {
	assert.Equal(t, "CATEGORIES", ViewCategories.String())
	assert.Equal(t, "ASSET_LIST", ViewAssetList.String())
	assert.Equal(t, "ASSET_FORM", ViewAssetForm.String())
	assert.Equal(t, "SETTINGS", ViewSettings.String())
	assert.Equal(t, "UNKNOWN", ViewState(99).String())
}

func TestLightboxOpen(t *testing.T) {
	images := [][]byte{{1}, {2}, {3}}

	t.Run("opens_at_index", func(t *testing.T) {
		var l Lightbox
		l.Open(images, 1)
		assert.True(t, l.IsOpen)
		assert.Equal(t, []byte{2}, l.Current())
	})

	t.Run("out_of_range_index_clamps_to_first", func(t *testing.T) {
		var l Lightbox
		l.Open(images, 7)
		assert.Equal(t, 0, l.Index)
	})

	t.Run("no_images_is_noop", func(t *testing.T) {
		var l Lightbox
		l.Open(nil, 0)
		assert.False(t, l.IsOpen)
		assert.Nil(t, l.Current())
	})
}

func TestLightboxNavigationWraps(t *testing.T) {
	images := [][]byte{{1}, {2}, {3}}
	var l Lightbox
	l.Open(images, 0)

	l.Next()
	assert.Equal(t, 1, l.Index)
	l.Next()
	assert.Equal(t, 2, l.Index)
	l.Next()
	// Wraps past the end back to the first image.
	assert.Equal(t, 0, l.Index)

	l.Prev()
	assert.Equal(t, 2, l.Index)
}

func TestLightboxSingleImage(t *testing.T) {
	var l Lightbox
	l.Open([][]byte{{1}}, 0)

	l.Next()
	assert.Equal(t, 0, l.Index)
	l.Prev()
	assert.Equal(t, 0, l.Index)
}

func TestLightboxClose(t *testing.T) {
	var l Lightbox
	l.Open([][]byte{{1}}, 0)
	l.Close()
	assert.False(t, l.IsOpen)
	assert.Nil(t, l.Current())
}
