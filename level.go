package ktx2

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// LevelIndex locates one mip level in the stream.
type LevelIndex struct {
	// Offset is the absolute stream offset of the level data.
	Offset uint64
	// Length is the stored byte length.
	Length uint64
	// UncompressedLength is the byte length after supercompression is undone.
	UncompressedLength uint64
}

// readLevelIndex reads count entries from LevelIndexOffset in one read.
func readLevelIndex(r io.ReadSeeker, count uint32) ([]LevelIndex, error) {
	if _, err := r.Seek(LevelIndexOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLevelIndexRead, err)
	}

	data := make([]byte, int(count)*LevelIndexEntrySize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: %d entries: %w", ErrLevelIndexRead, count, err)
	}

	levels := make([]LevelIndex, count)
	for i := range levels {
		entry := data[i*LevelIndexEntrySize : (i+1)*LevelIndexEntrySize]
		levels[i] = LevelIndex{
			Offset:             binary.LittleEndian.Uint64(entry[0:8]),
			Length:             binary.LittleEndian.Uint64(entry[8:16]),
			UncompressedLength: binary.LittleEndian.Uint64(entry[16:24]),
		}
		if levels[i].Offset > math.MaxUint64-levels[i].UncompressedLength {
			return nil, fmt.Errorf("%w: level %d", ErrLevelOverflow, i)
		}
	}

	return levels, nil
}
