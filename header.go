package ktx2

import "encoding/binary"

// Header holds the fixed header fields of a KTX2 stream.
type Header struct {
	Format                 Format
	TypeSize               uint32
	BaseWidth              uint32
	BaseHeight             uint32
	BaseDepth              uint32
	LayerCount             uint32
	FaceCount              uint32
	LevelCount             uint32
	SupercompressionScheme SupercompressionScheme
}

// Levels returns the number of level index entries, which is at least 1.
func (h Header) Levels() uint32 {
	return max(h.LevelCount, 1)
}

// Layers returns the number of images per level: array layers times faces.
func (h Header) Layers() uint32 {
	return max(h.LayerCount, 1) * h.FaceCount
}

// IsCubemap reports whether the texture has six faces.
func (h Header) IsCubemap() bool {
	return h.FaceCount == 6
}

// IsArray reports whether the texture declares explicit array layers.
func (h Header) IsArray() bool {
	return h.LayerCount > 0
}

// parseHeader decodes the header fields at offsets 12..48 of head.
// Integers are little-endian whatever the host byte order.
func parseHeader(head *[HeadSize]byte) (*Header, error) {
	le := binary.LittleEndian

	format, err := parseFormat(le.Uint32(head[12:16]))
	if err != nil {
		return nil, err
	}

	h := &Header{
		Format:                 format,
		TypeSize:               le.Uint32(head[16:20]),
		BaseWidth:              le.Uint32(head[20:24]),
		BaseHeight:             le.Uint32(head[24:28]),
		BaseDepth:              le.Uint32(head[28:32]),
		LayerCount:             le.Uint32(head[32:36]),
		FaceCount:              le.Uint32(head[36:40]),
		LevelCount:             le.Uint32(head[40:44]),
		SupercompressionScheme: SupercompressionScheme(le.Uint32(head[44:48])),
	}

	if h.BaseWidth == 0 {
		return nil, ErrZeroWidth
	}
	if h.FaceCount == 0 {
		return nil, ErrZeroFaceCount
	}
	if h.SupercompressionScheme != SupercompressionNone {
		return nil, &FeatureError{Feature: "supercompression scheme " + h.SupercompressionScheme.String()}
	}

	return h, nil
}
