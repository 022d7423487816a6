package png

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestEncodeRGB_RoundTrip(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 10, 20, 30,
	}

	encoded, err := EncodeRGB(pixels, 2, 2)
	if err != nil {
		t.Fatalf("EncodeRGB: %v", err)
	}
	if !bytes.HasPrefix(encoded, pngMagic) {
		t.Fatal("output is not a valid PNG (bad magic)")
	}

	decoded, err := DecodeRGB(encoded)
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	if decoded.Width != 2 || decoded.Height != 2 {
		t.Errorf("decoded dimensions %dx%d, want 2x2", decoded.Width, decoded.Height)
	}
	if !bytes.Equal(decoded.Pixels, pixels) {
		t.Errorf("round trip changed pixels:\n got %v\nwant %v", decoded.Pixels, pixels)
	}
}

func TestEncodeRGB_SizeMismatch(t *testing.T) {
	if _, err := EncodeRGB(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected error for short buffer, got nil")
	}
	if _, err := EncodeRGB(make([]byte, 2*2*3+1), 2, 2); err == nil {
		t.Error("expected error for oversized buffer, got nil")
	}
}

func TestGetInfo(t *testing.T) {
	encoded, err := EncodeRGB(make([]byte, 4*3*3), 4, 3)
	if err != nil {
		t.Fatalf("EncodeRGB: %v", err)
	}

	info, err := GetInfo(encoded)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Width != 4 || info.Height != 3 {
		t.Errorf("GetInfo dimensions %dx%d, want 4x3", info.Width, info.Height)
	}
}

func TestGetInfo_NotAPNG(t *testing.T) {
	if _, err := GetInfo([]byte("not a png")); err == nil {
		t.Error("expected error for junk input, got nil")
	}
}
