package section

// AC1015Sentinel terminates the AC1015 section locator table. A file whose
// locator table does not end in these six bytes is treated as corrupt rather
// than guessed at.
var AC1015Sentinel = [6]byte{0x95, 0xA0, 0x4E, 0x28, 0x99, 0x82}

// Fixed byte offsets used by the AC1015 (R2000) file header, all measured
// from the start of the file.
const (
	AC1015ImageSeekerOffset = 0x13
	AC1015CodePageOffset    = 0x14
	AC1015LocatorOffset     = 0x15
	AC1015LocatorCount      = 5
	AC1015LocatorEntrySize  = 12 // record_number(RL) + seeker(RL) + size(RL)
)

// Locator table record indices, in on-disk order, for AC1015.
const (
	LocatorHeaderVars = iota
	LocatorClassDefs
	LocatorObjectMap
	LocatorUnknown
	LocatorSecondHeader
)

// AC1018PreambleSize is the size, in bytes, of the encrypted system header
// that opens every AC1018+ file immediately after the six-byte version
// magic.
const AC1018PreambleSize = 0x80

// preambleXORKey is the fixed byte mask AC1018+ uses to obscure the system
// header. It is applied repeating, byte for byte; it is an obfuscation, not
// a cipher, and carries no secret.
var preambleXORKey = []byte{
	0x95, 0x68, 0x01, 0xB3, 0x4D, 0x9F, 0x22, 0x7C,
	0xE1, 0x0A, 0x5B, 0xC4, 0x3E, 0x88, 0xF0, 0x17,
}

// The Preamble* constants give the byte offsets of the decrypted preamble's
// fields, each a raw little-endian uint32 (RL).
const (
	PreambleStandardPageSize = 0
	PreamblePageMapID        = 4
	PreamblePageMapSeeker    = 8
	PreamblePageMapSize      = 12
	PreambleSectionMapID     = 16
	PreambleSectionMapSeeker = 20
	PreambleSectionMapSize   = 24
	PreambleGapAmount        = 28
	PreambleSectionPageMapID = 32
	PreambleLastSectionID    = 36
	PreambleLastPageID       = 40
	PreambleSecondHeaderAddr = 44
	PreambleGapArraySize     = 48
	PreambleCplusplusSize    = 52
	PreambleMaxSectionSize   = 56
)

// Well-known logical section names required to decode entity data.
const (
	SectionHeader  = "AcDb:Header"
	SectionHandles = "AcDb:Handles"
	SectionObjects = "AcDb:AcDbObjects"
	SectionClasses = "AcDb:Classes"
)

// PageHeaderSize is the fixed on-disk size, in bytes, of a system-section
// page header.
const PageHeaderSize = 20
