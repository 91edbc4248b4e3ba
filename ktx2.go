package ktx2

const (
	// IdentifierSize is the length of the file identifier.
	IdentifierSize = 12
	// HeadSize is the length of the identifier plus the header fields read.
	HeadSize = 48

	// LevelIndexOffset is the absolute stream offset of the level index.
	LevelIndexOffset = 80
	// LevelIndexEntrySize is the size of one level index entry.
	LevelIndexEntrySize = 24

	// DefaultMaxLevels is the longest mip chain a 32-bit base dimension allows.
	DefaultMaxLevels = 32
)

// identifier is «KTX 20»\r\n\x1A\n.
var identifier = [IdentifierSize]byte{
	0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A,
}

// checkIdentifier compares the leading bytes of head with the KTX2 identifier.
func checkIdentifier(head []byte) error {
	var got [IdentifierSize]byte
	copy(got[:], head)
	if got != identifier {
		return &IdentifierError{Got: got}
	}

	return nil
}
