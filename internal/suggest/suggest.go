// Package suggest derives asset-code suggestions from previously entered
// codes. A code like "IT-001" splits into the prefix "IT-" and the
// sequence 1; the next suggested code is the prefix with the sequence
// incremented.
package suggest

import (
	"fmt"
	"strconv"

	"github.com/wyhuang/stocktake/internal/model"
)

// SequenceWidth is the minimum number of digits in a suggested sequence.
const SequenceWidth = 3

// SplitCode splits an asset code into its non-numeric prefix and trailing
// numeric sequence. ok is false when the code has no trailing digits or
// the digit run is too long to fit an int.
func SplitCode(code string) (prefix string, seq int, ok bool) {
	if code == "" {
		return "", 0, false
	}

	i := len(code)
	for i > 0 && code[i-1] >= '0' && code[i-1] <= '9' {
		i--
	}
	if i == len(code) {
		return "", 0, false
	}

	seq, err := strconv.Atoi(code[i:])
	if err != nil {
		return "", 0, false
	}
	return code[:i], seq, true
}

// NextCode formats the next code for a prefix and the last used sequence,
// zero-padding the sequence to at least SequenceWidth digits.
func NextCode(prefix string, lastSeq int) string {
	return fmt.Sprintf("%s%0*d", prefix, SequenceWidth, lastSeq+1)
}

// FromSettings returns the suggested next asset code from accumulated
// settings, or "" when no code has ever been recorded.
func FromSettings(s *model.Settings) string {
	if s == nil || s.LastUsedPrefix == "" && s.LastUsedSequence == 0 {
		return ""
	}
	return NextCode(s.LastUsedPrefix, s.LastUsedSequence)
}
