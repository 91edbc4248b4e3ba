// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

import "math"

// i64FromU64 converts a stream offset to a Seek argument.
func i64FromU64(n uint64) (int64, error) {
	if n > math.MaxInt64 {
		return 0, ErrSizeOverflow
	}

	return int64(n), nil
}

// intFromU64 converts a byte length to an allocation size.
func intFromU64(n uint64) (int, error) {
	if n > uint64(math.MaxInt) {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return int(n), nil
}
