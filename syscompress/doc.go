// Package syscompress implements the AC1018+ system-section layer: the
// DWG-specific LZ77 variant that compresses individual pages, and the
// orchestration that turns a page map and a section map into contiguous,
// checksum-validated logical byte streams (AcDb:Header, AcDb:Handles,
// AcDb:AcDbObjects, AcDb:Classes).
//
// Nothing here is a general-purpose compression codec; it exists to mirror
// one fixed, undocumented-outside-the-format wire encoding and has no
// configuration surface. The ambient diagnostic-export codecs used by the
// inspection CLI live in the separate compress package.
package syscompress
