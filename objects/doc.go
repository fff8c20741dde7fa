// Package objects implements C6: given an object's (handle, offset) from
// the object map, seek into the logical AcDbObjects stream, read the
// object's size and type, scope a bitstream to exactly its byte span,
// dispatch to the right entity parser, and validate the trailing CRC-16.
package objects
