// Package ui provides the interactive terminal interface for Stocktake.
// The top-level App model is an explicit state machine over four views;
// transitions are plain methods on the model so they can be unit-tested
// without a terminal.
package ui

// ViewState selects which screen is active.
type ViewState int

const (
	// ViewCategories is the initial/default view.
	ViewCategories ViewState = iota
	// ViewAssetList shows the active category's assets.
	ViewAssetList
	// ViewAssetForm creates or edits a single asset.
	ViewAssetForm
	// ViewSettings shows the accumulated suggestion history.
	ViewSettings
)

// String returns the view name.
func (v ViewState) String() string {
	switch v {
	case ViewCategories:
		return "CATEGORIES"
	case ViewAssetList:
		return "ASSET_LIST"
	case ViewAssetForm:
		return "ASSET_FORM"
	case ViewSettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// Lightbox is the ephemeral state of the full-screen image viewer. The
// index always stays within [0, len(images)) while the viewer is open;
// navigation wraps around.
type Lightbox struct {
	IsOpen  bool
	Images  [][]byte
	Index   int
	preview string
}

// Open opens the viewer over an image sequence at the given start index.
// Opening with no images is a no-op.
func (l *Lightbox) Open(images [][]byte, index int) {
	if len(images) == 0 {
		return
	}
	if index < 0 || index >= len(images) {
		index = 0
	}
	l.IsOpen = true
	l.Images = images
	l.Index = index
	l.preview = ""
}

// Close hides the viewer. The image sequence is left in place; it is
// replaced on the next Open.
func (l *Lightbox) Close() {
	l.IsOpen = false
	l.preview = ""
}

// Next advances to the next image, wrapping to the first.
func (l *Lightbox) Next() {
	if len(l.Images) == 0 {
		return
	}
	l.Index = (l.Index + 1) % len(l.Images)
	l.preview = ""
}

// Prev moves to the previous image, wrapping to the last.
func (l *Lightbox) Prev() {
	if len(l.Images) == 0 {
		return
	}
	l.Index = (l.Index - 1 + len(l.Images)) % len(l.Images)
	l.preview = ""
}

// Current returns the payload under the cursor, or nil when closed/empty.
func (l *Lightbox) Current() []byte {
	if !l.IsOpen || l.Index < 0 || l.Index >= len(l.Images) {
		return nil
	}
	return l.Images[l.Index]
}
