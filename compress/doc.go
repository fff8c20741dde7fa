// Package compress provides the codecs dwginspect export uses to write a
// compressed JSON snapshot of a decoded Document, for diagnostics and
// golden-file regression tracking. It plays no part in core DWG decoding.
//
// Four codecs are available, selected by format.CompressionType:
//   - None: no compression, useful for diffing snapshots directly.
//   - Zstd: best ratio, backed by a pure-Go implementation
//     (klauspost/compress) by default, or by cgo (valyala/gozstd) when the
//     binary is built with cgo enabled — selected at build time by the
//     zstd_pure.go / zstd_cgo.go build tags, not at runtime.
//   - S2: Snappy-family, fast with a good ratio.
//   - LZ4: fastest decompression.
package compress
