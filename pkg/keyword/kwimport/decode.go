package kwimport

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// Decode converts raw exported bytes to a UTF-8 string. Keyword
// planner exports arrive as UTF-16LE (the common case for spreadsheet
// tools), UTF-16BE, or UTF-8 with or without a BOM. The BOM decides the
// decoding; without one the bytes are taken as UTF-8 as-is.
//
// A UTF-16 stream that fails mid-way keeps its successfully converted
// prefix; a stream that cannot be converted at all yields an empty string
// and the import fails later at header detection.
func Decode(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		return decodeUTF16(raw[2:], unicode.LittleEndian)
	case bytes.HasPrefix(raw, bomUTF16BE):
		return decodeUTF16(raw[2:], unicode.BigEndian)
	case bytes.HasPrefix(raw, bomUTF8):
		return string(raw[3:])
	default:
		return string(raw)
	}
}

func decodeUTF16(raw []byte, endianness unicode.Endianness) string {
	decoder := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder()
	// On a mid-stream failure transform.String hands back the prefix it
	// converted before stopping; that prefix is still worth parsing.
	converted, _, _ := transform.String(decoder, string(raw))
	return converted
}
