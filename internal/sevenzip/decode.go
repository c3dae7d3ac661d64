package sevenzip

import (
	"runtime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// outputEncoding is the text encoding 7-Zip emits on the current platform.
// Windows builds of 7-Zip write the console codepage (a legacy DBCS
// codepage on Chinese-locale systems); everywhere else it is UTF-8.
var outputEncoding = encodingForOS(runtime.GOOS)

func encodingForOS(goos string) encoding.Encoding {
	if goos == "windows" {
		return simplifiedchinese.GB18030
	}
	return unicode.UTF8
}

// Decode converts raw 7-Zip output bytes to a UTF-8 string.
// Decoding is tolerant: undecodable byte sequences are replaced rather
// than failing, so a garbled filename never aborts a listing.
func Decode(b []byte) string {
	return decodeWith(outputEncoding, b)
}

// trimmedStderr decodes a result's diagnostic output for error messages.
// 7-Zip writes errors to stderr but some builds report on stdout, so stdout
// is the fallback when stderr is empty.
func trimmedStderr(res *Result) string {
	if s := strings.TrimSpace(Decode(res.Stderr)); s != "" {
		return s
	}
	return strings.TrimSpace(Decode(res.Stdout))
}

func decodeWith(enc encoding.Encoding, b []byte) string {
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		// Decoders are configured to substitute bad input, but guard the
		// fallback anyway: a lossy string beats a lost listing.
		return strings.ToValidUTF8(string(b), string('�'))
	}
	return strings.ToValidUTF8(string(decoded), string('�'))
}
