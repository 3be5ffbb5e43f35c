package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wyhuang/stocktake/internal/model"
)

func TestSplitCode(t *testing.T) {
	tests := []struct {
		code   string
		prefix string
		seq    int
		ok     bool
	}{
		{"IT-001", "IT-", 1, true},
		{"IT-042", "IT-", 42, true},
		{"LAB2-100", "LAB2-", 100, true},
		{"A1", "A", 1, true},
		{"007", "", 7, true},
		{"MISC", "", 0, false},
		{"", "", 0, false},
		{"IT-", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			prefix, seq, ok := SplitCode(tt.code)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.prefix, prefix)
				assert.Equal(t, tt.seq, seq)
			}
		})
	}
}

func TestNextCode(t *testing.T) {
	assert.Equal(t, "IT-002", NextCode("IT-", 1))
	assert.Equal(t, "IT-100", NextCode("IT-", 99))
	// Sequences wider than the pad keep their full width.
	assert.Equal(t, "IT-1000", NextCode("IT-", 999))
	assert.Equal(t, "001", NextCode("", 0))
}

func TestFromSettings(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", FromSettings(nil))
		assert.Equal(t, "", FromSettings(model.NewSettings()))
	})

	t.Run("recorded", func(t *testing.T) {
		s := model.NewSettings()
		s.LastUsedPrefix = "IT-"
		s.LastUsedSequence = 7
		assert.Equal(t, "IT-008", FromSettings(s))
	})
}

func TestSplitThenNextRoundTrip(t *testing.T) {
	prefix, seq, ok := SplitCode("IT-009")
	assert.True(t, ok)
	assert.Equal(t, "IT-010", NextCode(prefix, seq))
}
