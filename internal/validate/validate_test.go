package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyhuang/stocktake/internal/errors"
)

func TestName(t *testing.T) {
	assert.NoError(t, Name("Laptop"))
	assert.ErrorIs(t, Name(""), errors.ErrEmptyName)
	assert.Error(t, Name(strings.Repeat("x", MaxNameLength+1)))
	assert.NoError(t, Name(strings.Repeat("x", MaxNameLength)))
}

func TestAssetCode(t *testing.T) {
	valid := []string{"", "IT-001", "a", "9", "LAB_2.b-3"}
	for _, code := range valid {
		assert.NoError(t, AssetCode(code), code)
	}

	invalid := []string{"-leading", ".dot", "has space", "uni\tcode"}
	for _, code := range invalid {
		assert.Error(t, AssetCode(code), code)
	}

	assert.Error(t, AssetCode(strings.Repeat("a", MaxAssetCodeLength+1)))
}

func TestLocationAndNote(t *testing.T) {
	assert.NoError(t, Location("Room 2"))
	assert.Error(t, Location(strings.Repeat("x", MaxLocationLength+1)))

	assert.NoError(t, Note(""))
	assert.Error(t, Note(strings.Repeat("x", MaxNoteLength+1)))
}

func TestCategoryName(t *testing.T) {
	name, err := CategoryName("  Warehouse A  ")
	require.NoError(t, err)
	assert.Equal(t, "Warehouse A", name)

	_, err = CategoryName("   ")
	assert.ErrorIs(t, err, errors.ErrEmptyName)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Laptop", SanitizeName("  Laptop\x00\x1b  "))
	assert.Equal(t, "", SanitizeName("\t\n"))
}

func TestSanitizeNote(t *testing.T) {
	assert.Equal(t, "a\nb\nc", SanitizeNote("a\r\nb\rc"))
	assert.Equal(t, "note", SanitizeNote("note\x00"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "lon...", TruncateString("longer text", 6))
	assert.Equal(t, "lo", TruncateString("longer", 2))
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "Warehouse_A", SafeFilename("Warehouse A"))
	assert.Equal(t, "a_b_c", SafeFilename("a/b:c"))
	assert.Equal(t, "name", SafeFilename("name."))
}
