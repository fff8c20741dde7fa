// Package dwg is the top-level entry point for the decoder: it wires C1
// through C9 together behind Read and exposes the document model (Document,
// Layout, Entity) a caller queries after decode.
package dwg
