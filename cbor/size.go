package cbor

// Worst-case head sizes for this subset. The total encoded size of a
// variable-length item is its head size plus the length of its content.
const (
	UintHeadSize  = 9 // major type 0/6, 1-byte lead + up to 8-byte uint64
	BytesHeadSize = 9
	TextHeadSize  = 9
	ArrayHeadSize = 9
	MapHeadSize   = 9
	BoolSize      = 1
)
