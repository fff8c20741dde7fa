// Package section decodes the structural layer of a DWG file that sits
// between the raw byte stream and the object data: the file header (C3),
// the AC1018+ paged system-section framing (page headers and the
// section/page maps, C4's descriptors), and the handle-to-offset object map
// (C5).
//
// AC1015 files locate their sections through a small fixed locator table
// read directly from the header. AC1018 and later files store everything
// inside a sequence of fixed-size, independently compressed and
// checksummed pages; a page map and a section map (themselves pages) must
// be decoded first to find where a named logical section's pages live.
// Decompressing page payloads is the job of the sibling syscompress
// package; this package owns the descriptors syscompress decodes into and
// the object map built from the reassembled handle stream.
package section
