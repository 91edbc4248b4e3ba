package ktx2

import "fmt"

// SupercompressionScheme is the whole-payload compression code from the header.
type SupercompressionScheme uint32

// Supercompression schemes defined by the KTX2 format. Only
// SupercompressionNone can be read.
const (
	SupercompressionNone      SupercompressionScheme = 0
	SupercompressionBasisLZ   SupercompressionScheme = 1
	SupercompressionZstandard SupercompressionScheme = 2
	SupercompressionZLIB      SupercompressionScheme = 3
)

func (s SupercompressionScheme) String() string {
	switch s {
	case SupercompressionNone:
		return "none"
	case SupercompressionBasisLZ:
		return "BasisLZ"
	case SupercompressionZstandard:
		return "Zstandard"
	case SupercompressionZLIB:
		return "ZLIB"
	default:
		return fmt.Sprintf("scheme %d", uint32(s))
	}
}
