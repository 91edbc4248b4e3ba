package ktx2

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every failure caused by malformed stream content.
	ErrParse = errors.New("parse failed")

	// ErrBadIdentifier indicates the stream does not start with the KTX2 identifier.
	ErrBadIdentifier = fmt.Errorf("%w: bad identifier", ErrParse)
	// ErrUnknownFormat indicates the vkFormat field is not in the format registry.
	ErrUnknownFormat = fmt.Errorf("%w: unknown format", ErrParse)
	// ErrZeroWidth indicates a zero base width.
	ErrZeroWidth = fmt.Errorf("%w: zero base width", ErrParse)
	// ErrZeroFaceCount indicates a zero face count.
	ErrZeroFaceCount = fmt.Errorf("%w: zero face count", ErrParse)
	// ErrUnsupportedFeature indicates a valid but unsupported format feature.
	ErrUnsupportedFeature = fmt.Errorf("%w: unsupported feature", ErrParse)
	// ErrTooManyLevels indicates a level count above the configured limit.
	ErrTooManyLevels = fmt.Errorf("%w: too many levels", ErrParse)
	// ErrLevelOverflow indicates a level whose byte range overflows 64 bits.
	ErrLevelOverflow = fmt.Errorf("%w: level range overflow", ErrParse)

	// ErrBadBuffer indicates a caller buffer of the wrong length.
	ErrBadBuffer = errors.New("bad buffer")
	// ErrSizeOverflow indicates a size exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")

	// ErrHeaderRead indicates reading the identifier and header failed.
	ErrHeaderRead = errors.New("reading header failed")
	// ErrLevelIndexRead indicates seeking to or reading the level index failed.
	ErrLevelIndexRead = errors.New("reading level index failed")
	// ErrSeekData indicates seek to data start failed.
	ErrSeekData = errors.New("seek to data start failed")
	// ErrReadData indicates reading texture data failed.
	ErrReadData = errors.New("reading data failed")
)

// IdentifierError carries the identifier bytes actually read.
type IdentifierError struct {
	Got [IdentifierSize]byte
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("%v: % x", ErrBadIdentifier, e.Got[:])
}

func (e *IdentifierError) Unwrap() error { return ErrBadIdentifier }

// FormatError carries an unrecognized vkFormat value.
type FormatError struct {
	ID uint32
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %d", ErrUnknownFormat, e.ID)
}

func (e *FormatError) Unwrap() error { return ErrUnknownFormat }

// FeatureError names a feature the stream uses that cannot be read.
type FeatureError struct {
	Feature string
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnsupportedFeature, e.Feature)
}

func (e *FeatureError) Unwrap() error { return ErrUnsupportedFeature }

// BufferError reports a destination buffer whose length is not the payload length.
type BufferError struct {
	Expected uint64
	Got      int
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("%v: expected %d bytes, got %d", ErrBadBuffer, e.Expected, e.Got)
}

func (e *BufferError) Unwrap() error { return ErrBadBuffer }
