package storage

import (
	"errors"
	"testing"
)

func TestLandscapeCodecRoundTrip(t *testing.T) {
	input := testRecord("ls-1", "2026-08-01T00:00:00Z", 1)

	payload, err := EncodeLandscape(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeLandscape(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if output.ID != input.ID || output.TraitIndex != input.TraitIndex {
		t.Fatalf("round trip mismatch: %+v", output)
	}
	if len(output.Terms) != 1 || output.Terms[0] != input.Terms[0] {
		t.Fatalf("terms mismatch: %+v", output.Terms)
	}
}

func TestDecodeLandscapeVersionMismatch(t *testing.T) {
	record := testRecord("ls-1", "2026-08-01T00:00:00Z", 0)
	record.SchemaVersion = CurrentSchemaVersion + 1

	payload, err := EncodeLandscape(record)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeLandscape(payload); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got %v", err)
	}
}

func TestDecodeLandscapeRejectsGarbage(t *testing.T) {
	if _, err := DecodeLandscape([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
