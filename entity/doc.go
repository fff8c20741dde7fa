// Package entity implements C7 (the common entity header) and C8 (the
// per-type entity parsers): the shared prologue every object carries
// before its type-specific fields, and one normalized record variant per
// supported entity type (LINE, ARC, LWPOLYLINE, POINT, CIRCLE, ELLIPSE,
// TEXT, MTEXT, DIMENSION, and the supplemented INSERT).
//
// Every parser receives a bitstream already positioned just past the
// common header and returns a typed Record. Trailing owner/reactor/layer/
// linetype/material/plot-style handles are read inline, immediately after
// the common header fields, for AC1015 and AC1018; for AC1021 and later
// they are read by ParseTrailingHandles once a parser has finished its
// type-specific fields, mirroring where the format actually places them.
package entity
