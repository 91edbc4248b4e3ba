package ktx2

import (
	"bytes"
	"encoding/binary"
	"io"
)

// testTexture describes a synthetic KTX2 stream.
type testTexture struct {
	id         [IdentifierSize]byte
	format     uint32
	typeSize   uint32
	width      uint32
	height     uint32
	depth      uint32
	layers     uint32
	faces      uint32
	levelCount uint32
	scheme     uint32
	levels     []LevelIndex
	payload    []byte
}

// newTestTexture returns the single-level 4x4 RGBA8 texture with a 64-byte payload.
func newTestTexture() *testTexture {
	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(i*7 + 3)
	}

	return &testTexture{
		id:         identifier,
		format:     uint32(FormatR8G8B8A8Unorm),
		typeSize:   1,
		width:      4,
		height:     4,
		depth:      1,
		faces:      1,
		levelCount: 1,
		levels: []LevelIndex{
			{Offset: LevelIndexOffset + LevelIndexEntrySize, Length: 64, UncompressedLength: 64},
		},
		payload: payload,
	}
}

// bytes lays the texture out: head, zero padding to the level index, the
// level index, then the payload at the first level offset.
func (tt *testTexture) bytes() []byte {
	var buf bytes.Buffer
	buf.Write(tt.id[:])
	for _, v := range []uint32{
		tt.format, tt.typeSize, tt.width, tt.height, tt.depth,
		tt.layers, tt.faces, tt.levelCount, tt.scheme,
	} {
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}
	buf.Write(make([]byte, LevelIndexOffset-buf.Len()))

	for _, l := range tt.levels {
		_ = binary.Write(&buf, binary.LittleEndian, l)
	}

	if len(tt.levels) > 0 {
		start := int(firstLevelOffset(tt.levels))
		if pad := start - buf.Len(); pad > 0 {
			buf.Write(make([]byte, pad))
		}
	}
	buf.Write(tt.payload)

	return buf.Bytes()
}

// countingReadSeeker records calls made on the wrapped stream.
type countingReadSeeker struct {
	rs    io.ReadSeeker
	reads int
	seeks int
}

func (c *countingReadSeeker) Read(p []byte) (int, error) {
	c.reads++
	return c.rs.Read(p)
}

func (c *countingReadSeeker) Seek(offset int64, whence int) (int64, error) {
	c.seeks++
	return c.rs.Seek(offset, whence)
}
