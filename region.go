package ktx2

// RegionDescription describes where one mip level sits in the payload and
// what its dimensions are.
type RegionDescription struct {
	Level uint32
	// LayerCount is array layers times faces.
	LayerCount uint32
	// OffsetBytes is relative to the start of the payload.
	OffsetBytes uint64
	Width       uint32
	Height      uint32
	Depth       uint32
}

// levelSize calculates the dimension of a mip level, never below 1.
func levelSize(base uint32, level uint32) uint32 {
	return max(base>>level, 1)
}

// regions builds one description per level index entry, in level order.
func regions(h Header, levels []LevelIndex) []RegionDescription {
	base := firstLevelOffset(levels)
	out := make([]RegionDescription, len(levels))
	for i, l := range levels {
		level := uint32(i)
		out[i] = RegionDescription{
			Level:       level,
			LayerCount:  h.Layers(),
			OffsetBytes: l.Offset - base,
			Width:       levelSize(h.BaseWidth, level),
			Height:      levelSize(h.BaseHeight, level),
			Depth:       levelSize(h.BaseDepth, level),
		}
	}

	return out
}

// firstLevelOffset is the smallest level offset, the start of the payload.
func firstLevelOffset(levels []LevelIndex) uint64 {
	first := levels[0].Offset
	for _, l := range levels[1:] {
		first = min(first, l.Offset)
	}

	return first
}

// lastLevel is the level with the largest offset.
func lastLevel(levels []LevelIndex) LevelIndex {
	last := levels[0]
	for _, l := range levels[1:] {
		if l.Offset > last.Offset {
			last = l
		}
	}

	return last
}

// dataLen is the length of the contiguous payload spanning all levels.
func dataLen(levels []LevelIndex) uint64 {
	last := lastLevel(levels)
	return last.Offset + last.UncompressedLength - firstLevelOffset(levels)
}
