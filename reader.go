package ktx2

import (
	"errors"
	"fmt"
	"io"
)

// ReadOptions configures a Reader. Nil uses defaults.
type ReadOptions struct {
	// MaxLevels caps the header level count accepted before the level index
	// is allocated. Zero means DefaultMaxLevels.
	MaxLevels uint32
	// MaxDataLen caps the payload ReadData allocates. Zero means no limit.
	MaxDataLen uint64
}

// Reader decodes one KTX2 stream. It owns the stream for its lifetime and
// is not safe for concurrent use.
//
// If a read or seek fails, the stream position is undefined; later calls
// re-seek before reading, but a failed Reader should normally be discarded.
type Reader struct {
	r          io.ReadSeeker
	header     Header
	levels     []LevelIndex
	maxDataLen uint64
}

// NewReader validates the identifier, decodes the header and the level index.
func NewReader(r io.ReadSeeker) (*Reader, error) {
	return NewReaderWithOptions(r, nil)
}

// NewReaderWithOptions is NewReader with explicit limits.
func NewReaderWithOptions(r io.ReadSeeker, opts *ReadOptions) (*Reader, error) {
	maxLevels := uint32(DefaultMaxLevels)
	var maxDataLen uint64
	if opts != nil {
		if opts.MaxLevels > 0 {
			maxLevels = opts.MaxLevels
		}
		maxDataLen = opts.MaxDataLen
	}

	header, err := readHead(r)
	if err != nil {
		return nil, err
	}

	count := header.Levels()
	if count > maxLevels {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyLevels, count, maxLevels)
	}

	levels, err := readLevelIndex(r, count)
	if err != nil {
		return nil, err
	}

	return &Reader{
		r:          r,
		header:     *header,
		levels:     levels,
		maxDataLen: maxDataLen,
	}, nil
}

// readHead reads the identifier and header fields in one read and decodes them.
func readHead(r io.Reader) (*Header, error) {
	var head [HeadSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeaderRead, err)
	}

	if err := checkIdentifier(head[:IdentifierSize]); err != nil {
		return nil, err
	}

	return parseHeader(&head)
}

// Header returns the decoded header.
func (r *Reader) Header() Header {
	return r.header
}

// Levels returns a copy of the level index in on-disk level order.
func (r *Reader) Levels() []LevelIndex {
	out := make([]LevelIndex, len(r.levels))
	copy(out, r.levels)
	return out
}

// RegionsDescription returns the layout of every level inside the payload
// returned by ReadData, ordered by level.
func (r *Reader) RegionsDescription() []RegionDescription {
	return regions(r.header, r.levels)
}

// DataLen returns the payload length in bytes.
func (r *Reader) DataLen() uint64 {
	return dataLen(r.levels)
}

// ReadData reads the payload into a new buffer of DataLen bytes.
func (r *Reader) ReadData() ([]byte, error) {
	n := r.DataLen()
	if r.maxDataLen > 0 && n > r.maxDataLen {
		return nil, fmt.Errorf("%w: payload %d bytes (max %d)", ErrSizeOverflow, n, r.maxDataLen)
	}
	size, err := intFromU64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: payload %d bytes", err, n)
	}

	buf := make([]byte, size)
	if err := r.ReadDataTo(buf); err != nil {
		if errors.Is(err, ErrBadBuffer) {
			panic(fmt.Sprintf("ktx2: ReadDataTo rejected a buffer of DataLen bytes: %v", err))
		}
		return nil, err
	}

	return buf, nil
}

// ReadDataTo reads the payload into buf. len(buf) must equal DataLen;
// otherwise a *BufferError is returned and the stream is not touched.
// The layout of buf is given by RegionsDescription.
func (r *Reader) ReadDataTo(buf []byte) error {
	n := r.DataLen()
	if uint64(len(buf)) != n {
		return &BufferError{Expected: n, Got: len(buf)}
	}

	start, err := i64FromU64(firstLevelOffset(r.levels))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeekData, err)
	}
	if _, err := r.r.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", ErrSeekData, err)
	}

	if _, err := io.ReadFull(r.r, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrReadData, err)
	}

	return nil
}
