package kwimport

import (
	"context"
	"reflect"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"contentkit/pkg/keyword"
)

func encodeUTF16(t *testing.T, s string, endianness unicode.Endianness) []byte {
	t.Helper()

	encoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewEncoder()
	encoded, err := encoder.Bytes([]byte(s))
	if err != nil {
		t.Fatalf("Failed to encode test fixture: %v", err)
	}
	return encoded
}

func TestDecodeContent_UTF16LE(t *testing.T) {
	original := "Keyword\tAvg. monthly searches\nbusiness card template\t800\n"
	raw := encodeUTF16(t, original, unicode.LittleEndian)

	if raw[0] != 0xFF || raw[1] != 0xFE {
		t.Fatalf("Expected UTF-16LE BOM in fixture, got: % x", raw[:2])
	}
	if got := Decode(raw); got != original {
		t.Errorf("Expected round-tripped content, got: %q", got)
	}
}

func TestDecodeContent_UTF16BE(t *testing.T) {
	original := "Keyword,Avg. monthly searches\ncard case,100\n"
	raw := encodeUTF16(t, original, unicode.BigEndian)

	if raw[0] != 0xFE || raw[1] != 0xFF {
		t.Fatalf("Expected UTF-16BE BOM in fixture, got: % x", raw[:2])
	}
	if got := Decode(raw); got != original {
		t.Errorf("Expected round-tripped content, got: %q", got)
	}
}

func TestDecodeContent_UTF8BOMStripped(t *testing.T) {
	original := "Keyword,Avg. monthly searches\n"
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte(original)...)

	if got := Decode(raw); got != original {
		t.Errorf("Expected BOM stripped, got: %q", got)
	}
}

func TestDecodeContent_PlainUTF8Passthrough(t *testing.T) {
	original := "Keyword,Avg. monthly searches\nqr code cards,1200\n"
	if got := Decode([]byte(original)); got != original {
		t.Errorf("Expected passthrough, got: %q", got)
	}
}

func TestImport_UTF16AndUTF8Equivalent(t *testing.T) {
	ctx := context.Background()
	content := "Keyword\tAvg. monthly searches\tCompetition (indexed value)\n" +
		"how to network effectively\t1000\t45\n" +
		"digital business card\t2500\t60\n"

	utf8Store := keyword.NewMemoryStore()
	if _, err := New(utf8Store).ImportContent(ctx, content); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	utf16Store := keyword.NewMemoryStore()
	decoded := Decode(encodeUTF16(t, content, unicode.LittleEndian))
	if _, err := New(utf16Store).ImportContent(ctx, decoded); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	utf8Records, _ := utf8Store.ListAll(ctx)
	utf16Records, _ := utf16Store.ListAll(ctx)
	if len(utf8Records) != len(utf16Records) {
		t.Fatalf("Expected equal record counts, got %d and %d", len(utf8Records), len(utf16Records))
	}

	for i := range utf8Records {
		a, b := utf8Records[i], utf16Records[i]
		// IDs differ per store; everything derived must not.
		a.ID, b.ID = "", ""
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Record %d differs between encodings: %+v vs %+v", i, a, b)
		}
	}
}
