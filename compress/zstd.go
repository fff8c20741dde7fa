package compress

// ZstdCompressor compresses decoded-document export snapshots for
// diagnostics and golden-file regression tracking, trading compression
// speed for ratio on the largely-repetitive JSON the exporter produces.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
