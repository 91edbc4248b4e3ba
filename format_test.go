package ktx2

import (
	"errors"
	"testing"

	"github.com/woozymasta/bcn"
)

func TestParseFormatTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      uint32
		want    Format
		wantErr error
	}{
		{name: "first-core", id: 1, want: FormatR4G4UnormPack8},
		{name: "rgba8", id: 37, want: FormatR8G8B8A8Unorm},
		{name: "bc7-srgb", id: 146, want: FormatBC7SRGBBlock},
		{name: "last-core", id: 184, want: FormatASTC12x12SRGBBlock},
		{name: "pvrtc", id: 1000054000, want: FormatPVRTC12BPPUnormBlock},
		{name: "astc-hdr", id: 1000066013, want: FormatASTC12x12SfloatBlock},
		{name: "a4b4g4r4", id: 1000340001, want: FormatA4B4G4R4UnormPack16},
		{name: "undefined", id: 0, wantErr: ErrUnknownFormat},
		{name: "past-core", id: 185, wantErr: ErrUnknownFormat},
		{name: "extension-gap", id: 1000054008, wantErr: ErrUnknownFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFormat(tc.id)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("parseFormat(%d) error = %v, want %v", tc.id, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("parseFormat(%d) = %v, want %v", tc.id, got, tc.want)
			}
		})
	}
}

func TestFormatRegistryIsComplete(t *testing.T) {
	for id := uint32(1); id <= 184; id++ {
		if _, ok := formatNames[Format(id)]; !ok {
			t.Errorf("core format %d missing from registry", id)
		}
	}
	if got, want := len(formatNames), 184+8+14+2; got != want {
		t.Fatalf("len(formatNames) = %d, want %d", got, want)
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	if got := FormatB8G8R8A8SRGB.String(); got != "B8G8R8A8_SRGB" {
		t.Fatalf("String() = %q", got)
	}
	if got := Format(7777).String(); got != "Format(7777)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestFormatIsBlockCompressed(t *testing.T) {
	t.Parallel()

	compressed := []Format{
		FormatBC1RGBUnormBlock, FormatBC7UnormBlock, FormatETC2R8G8B8UnormBlock,
		FormatEACR11G11SnormBlock, FormatASTC4x4UnormBlock, FormatASTC12x12SRGBBlock,
		FormatPVRTC24BPPSRGBBlock, FormatASTC6x6SfloatBlock,
	}
	for _, f := range compressed {
		if !f.IsBlockCompressed() {
			t.Errorf("%v: expected block compressed", f)
		}
	}

	plain := []Format{
		FormatR8Unorm, FormatR8G8B8A8SRGB, FormatD32SfloatS8Uint,
		FormatE5B9G9R9UfloatPack32, FormatA4R4G4B4UnormPack16,
	}
	for _, f := range plain {
		if f.IsBlockCompressed() {
			t.Errorf("%v: expected uncompressed", f)
		}
	}
}

func TestFormatBCnTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   bcn.Format
	}{
		{format: FormatBC1RGBAUnormBlock, want: bcn.FormatDXT1},
		{format: FormatBC1RGBSRGBBlock, want: bcn.FormatDXT1},
		{format: FormatBC2UnormBlock, want: bcn.FormatDXT3},
		{format: FormatBC3SRGBBlock, want: bcn.FormatDXT5},
		{format: FormatBC4SnormBlock, want: bcn.FormatBC4},
		{format: FormatBC5UnormBlock, want: bcn.FormatBC5},
		{format: FormatR8G8B8A8Unorm, want: bcn.FormatRGBA8},
		{format: FormatB8G8R8A8SRGB, want: bcn.FormatBGRA8},
		{format: FormatBC7UnormBlock, want: bcn.FormatUnknown},
		{format: FormatR16G16B16A16Sfloat, want: bcn.FormatUnknown},
	}

	for _, tc := range tests {
		if got := tc.format.BCn(); got != tc.want {
			t.Errorf("%v.BCn() = %v, want %v", tc.format, got, tc.want)
		}
	}
}

func TestSupercompressionSchemeString(t *testing.T) {
	t.Parallel()

	if got := SupercompressionZstandard.String(); got != "Zstandard" {
		t.Fatalf("String() = %q", got)
	}
	if got := SupercompressionScheme(9).String(); got != "scheme 9" {
		t.Fatalf("String() = %q", got)
	}
}
