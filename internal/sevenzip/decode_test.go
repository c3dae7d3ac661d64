package sevenzip

import (
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

func TestDecodeWithGB18030(t *testing.T) {
	// "文件.txt" in GB18030 bytes, as a Chinese-locale Windows console
	// codepage would emit it.
	enc := simplifiedchinese.GB18030.NewEncoder()
	raw, err := enc.Bytes([]byte("文件.txt"))
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}

	got := decodeWith(simplifiedchinese.GB18030, raw)
	if got != "文件.txt" {
		t.Errorf("decoded %q, want %q", got, "文件.txt")
	}
}

func TestDecodeWithUTF8Passthrough(t *testing.T) {
	got := decodeWith(unicode.UTF8, []byte("plain/path.txt"))
	if got != "plain/path.txt" {
		t.Errorf("decoded %q, want passthrough", got)
	}
}

func TestDecodeWithInvalidBytesIsTolerant(t *testing.T) {
	// A truncated multibyte sequence must never abort decoding.
	got := decodeWith(unicode.UTF8, []byte{'o', 'k', 0xff, 0xfe})
	if got == "" {
		t.Error("tolerant decode should never yield empty output for non-empty input")
	}
}

func TestEncodingForOS(t *testing.T) {
	if encodingForOS("windows") != simplifiedchinese.GB18030 {
		t.Error("windows should decode as GB18030")
	}
	if encodingForOS("linux") != unicode.UTF8 {
		t.Error("non-windows should decode as UTF-8")
	}
}

func TestTrimmedStderrFallsBackToStdout(t *testing.T) {
	res := &Result{Stdout: []byte("  Everything is Ok \n"), Stderr: []byte("  \n")}
	if got := trimmedStderr(res); got != "Everything is Ok" {
		t.Errorf("got %q", got)
	}

	res = &Result{Stderr: []byte("ERROR: broken\n")}
	if got := trimmedStderr(res); got != "ERROR: broken" {
		t.Errorf("got %q", got)
	}
}
