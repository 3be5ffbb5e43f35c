package fuzz

import (
	"bytes"
	"testing"

	"github.com/wyhuang/stocktake/internal/imaging"
	"github.com/wyhuang/stocktake/internal/suggest"
	"github.com/wyhuang/stocktake/internal/validate"
)

// FuzzSanitizeName tests name sanitization with fuzz inputs.
// Run with: go test ./tests/fuzz/... -fuzz=FuzzSanitizeName -fuzztime=30s
func FuzzSanitizeName(f *testing.F) {
	seeds := []string{
		"normal text",
		"hello\x00world",
		"test\x1b[31mred",
		"café résumé",
		"日本語テスト",
		"emoji 😀🎉",
		"<script>alert('xss')</script>",
		string(make([]byte, 10000)),
		"",
		"   ",
		"\t\n\r",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Sanitization should never panic, and its output should always
		// pass re-sanitization unchanged.
		out := validate.SanitizeName(input)
		if again := validate.SanitizeName(out); again != out {
			t.Errorf("sanitize not idempotent: %q -> %q", out, again)
		}
	})
}

// FuzzSafeFilename tests filename derivation with fuzz inputs.
func FuzzSafeFilename(f *testing.F) {
	seeds := []string{
		"Warehouse A",
		"../../../etc/passwd",
		"..\\..\\windows\\system32",
		"file\x00.txt",
		"a:b*c?d",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		out := validate.SafeFilename(input)
		for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", "\x00"} {
			if bytes.Contains([]byte(out), []byte(c)) {
				t.Errorf("unsafe character %q survived in %q", c, out)
			}
		}
		if len(out) > 200 {
			t.Errorf("filename too long: %d", len(out))
		}
	})
}

// FuzzSplitCode tests asset-code splitting with fuzz inputs.
func FuzzSplitCode(f *testing.F) {
	seeds := []string{"IT-001", "MISC", "007", "", "A1B2", "999999999999999999999"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		prefix, seq, ok := suggest.SplitCode(input)
		if ok {
			if seq < 0 {
				t.Errorf("negative sequence %d from %q", seq, input)
			}
			if len(prefix) >= len(input) || input[:len(prefix)] != prefix {
				t.Errorf("prefix %q is not a proper prefix of %q", prefix, input)
			}
		}
	})
}

// FuzzProcessImage tests photo ingestion with arbitrary bytes.
func FuzzProcessImage(f *testing.F) {
	f.Add([]byte("not an image"))
	f.Add([]byte{0xff, 0xd8, 0xff, 0xe0})
	f.Add([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		// Process must reject garbage with an error, never panic.
		_, _ = imaging.Process(bytes.NewReader(data))
	})
}
