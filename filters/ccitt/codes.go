package ccitt

// codeKind tags what a code word stands for, so that the decoders can
// switch on it instead of on reserved numeric values.
type codeKind uint8

const (
	kindInvalid codeKind = iota
	kindTerminating       // run length 0..63, value is the length
	kindMakeup            // run length multiple of 64, value is the length
	kindPass
	kindHorizontal
	kindVertical  // value is the offset a1 - b1, in [-3, 3]
	kindExtension // entry into uncompressed mode
	kindEOL
	kindUncompressed     // value white pixels followed by one black pixel, or five white pixels when black is false
	kindUncompressedExit // value white pixels, then back to compressed mode; black gives the colour of the next run
	kindData             // a single fill or tag bit
)

// maxCodeLength is the length of the longest code word in the tables.
const maxCodeLength = 13

// code is one entry of the static code tables.
type code struct {
	length int    // number of significant bits, 1 <= length <= maxCodeLength
	bits   uint16 // the code word, right aligned
	kind   codeKind
	value  int
	black  bool // only for the uncompressed mode codes
}

var (
	eolCode = code{length: 12, bits: 0x001, kind: kindEOL}
	// tag bits following an EOL in mixed (K > 0) streams, and fill bits
	data0Code = code{length: 1, bits: 0, kind: kindData}
	data1Code = code{length: 1, bits: 1, kind: kindData, value: 1}

	// entry into uncompressed mode, in a 2-D row and in a 1-D row
	extension2DCode = code{length: 10, bits: 0x00f, kind: kindExtension}
	extension1DCode = code{length: 12, bits: 0x00f, kind: kindExtension}
)

// invalidCode fills the unused slots of the lookup tables. Its length can
// never be satisfied by the pending bits, which sends the search to the
// bit by bit path.
var invalidCode = code{length: int(^uint(0) >> 1), kind: kindInvalid}

// Terminating codes, Table 2/T.4.
var whiteTerminatingCodes = [64]code{
	{8, 0x35, kindTerminating, 0, false}, {6, 0x07, kindTerminating, 1, false},
	{4, 0x07, kindTerminating, 2, false}, {4, 0x08, kindTerminating, 3, false},
	{4, 0x0b, kindTerminating, 4, false}, {4, 0x0c, kindTerminating, 5, false},
	{4, 0x0e, kindTerminating, 6, false}, {4, 0x0f, kindTerminating, 7, false},
	{5, 0x13, kindTerminating, 8, false}, {5, 0x14, kindTerminating, 9, false},
	{5, 0x07, kindTerminating, 10, false}, {5, 0x08, kindTerminating, 11, false},
	{6, 0x08, kindTerminating, 12, false}, {6, 0x03, kindTerminating, 13, false},
	{6, 0x34, kindTerminating, 14, false}, {6, 0x35, kindTerminating, 15, false},
	{6, 0x2a, kindTerminating, 16, false}, {6, 0x2b, kindTerminating, 17, false},
	{7, 0x27, kindTerminating, 18, false}, {7, 0x0c, kindTerminating, 19, false},
	{7, 0x08, kindTerminating, 20, false}, {7, 0x17, kindTerminating, 21, false},
	{7, 0x03, kindTerminating, 22, false}, {7, 0x04, kindTerminating, 23, false},
	{7, 0x28, kindTerminating, 24, false}, {7, 0x2b, kindTerminating, 25, false},
	{7, 0x13, kindTerminating, 26, false}, {7, 0x24, kindTerminating, 27, false},
	{7, 0x18, kindTerminating, 28, false}, {8, 0x02, kindTerminating, 29, false},
	{8, 0x03, kindTerminating, 30, false}, {8, 0x1a, kindTerminating, 31, false},
	{8, 0x1b, kindTerminating, 32, false}, {8, 0x12, kindTerminating, 33, false},
	{8, 0x13, kindTerminating, 34, false}, {8, 0x14, kindTerminating, 35, false},
	{8, 0x15, kindTerminating, 36, false}, {8, 0x16, kindTerminating, 37, false},
	{8, 0x17, kindTerminating, 38, false}, {8, 0x28, kindTerminating, 39, false},
	{8, 0x29, kindTerminating, 40, false}, {8, 0x2a, kindTerminating, 41, false},
	{8, 0x2b, kindTerminating, 42, false}, {8, 0x2c, kindTerminating, 43, false},
	{8, 0x2d, kindTerminating, 44, false}, {8, 0x04, kindTerminating, 45, false},
	{8, 0x05, kindTerminating, 46, false}, {8, 0x0a, kindTerminating, 47, false},
	{8, 0x0b, kindTerminating, 48, false}, {8, 0x52, kindTerminating, 49, false},
	{8, 0x53, kindTerminating, 50, false}, {8, 0x54, kindTerminating, 51, false},
	{8, 0x55, kindTerminating, 52, false}, {8, 0x24, kindTerminating, 53, false},
	{8, 0x25, kindTerminating, 54, false}, {8, 0x58, kindTerminating, 55, false},
	{8, 0x59, kindTerminating, 56, false}, {8, 0x5a, kindTerminating, 57, false},
	{8, 0x5b, kindTerminating, 58, false}, {8, 0x4a, kindTerminating, 59, false},
	{8, 0x4b, kindTerminating, 60, false}, {8, 0x32, kindTerminating, 61, false},
	{8, 0x33, kindTerminating, 62, false}, {8, 0x34, kindTerminating, 63, false},
}

var blackTerminatingCodes = [64]code{
	{10, 0x37, kindTerminating, 0, false}, {3, 0x02, kindTerminating, 1, false},
	{2, 0x03, kindTerminating, 2, false}, {2, 0x02, kindTerminating, 3, false},
	{3, 0x03, kindTerminating, 4, false}, {4, 0x03, kindTerminating, 5, false},
	{4, 0x02, kindTerminating, 6, false}, {5, 0x03, kindTerminating, 7, false},
	{6, 0x05, kindTerminating, 8, false}, {6, 0x04, kindTerminating, 9, false},
	{7, 0x04, kindTerminating, 10, false}, {7, 0x05, kindTerminating, 11, false},
	{7, 0x07, kindTerminating, 12, false}, {8, 0x04, kindTerminating, 13, false},
	{8, 0x07, kindTerminating, 14, false}, {9, 0x18, kindTerminating, 15, false},
	{10, 0x17, kindTerminating, 16, false}, {10, 0x18, kindTerminating, 17, false},
	{10, 0x08, kindTerminating, 18, false}, {11, 0x67, kindTerminating, 19, false},
	{11, 0x68, kindTerminating, 20, false}, {11, 0x6c, kindTerminating, 21, false},
	{11, 0x37, kindTerminating, 22, false}, {11, 0x28, kindTerminating, 23, false},
	{11, 0x17, kindTerminating, 24, false}, {11, 0x18, kindTerminating, 25, false},
	{12, 0xca, kindTerminating, 26, false}, {12, 0xcb, kindTerminating, 27, false},
	{12, 0xcc, kindTerminating, 28, false}, {12, 0xcd, kindTerminating, 29, false},
	{12, 0x68, kindTerminating, 30, false}, {12, 0x69, kindTerminating, 31, false},
	{12, 0x6a, kindTerminating, 32, false}, {12, 0x6b, kindTerminating, 33, false},
	{12, 0xd2, kindTerminating, 34, false}, {12, 0xd3, kindTerminating, 35, false},
	{12, 0xd4, kindTerminating, 36, false}, {12, 0xd5, kindTerminating, 37, false},
	{12, 0xd6, kindTerminating, 38, false}, {12, 0xd7, kindTerminating, 39, false},
	{12, 0x6c, kindTerminating, 40, false}, {12, 0x6d, kindTerminating, 41, false},
	{12, 0xda, kindTerminating, 42, false}, {12, 0xdb, kindTerminating, 43, false},
	{12, 0x54, kindTerminating, 44, false}, {12, 0x55, kindTerminating, 45, false},
	{12, 0x56, kindTerminating, 46, false}, {12, 0x57, kindTerminating, 47, false},
	{12, 0x64, kindTerminating, 48, false}, {12, 0x65, kindTerminating, 49, false},
	{12, 0x52, kindTerminating, 50, false}, {12, 0x53, kindTerminating, 51, false},
	{12, 0x24, kindTerminating, 52, false}, {12, 0x37, kindTerminating, 53, false},
	{12, 0x38, kindTerminating, 54, false}, {12, 0x27, kindTerminating, 55, false},
	{12, 0x28, kindTerminating, 56, false}, {12, 0x58, kindTerminating, 57, false},
	{12, 0x59, kindTerminating, 58, false}, {12, 0x2b, kindTerminating, 59, false},
	{12, 0x2c, kindTerminating, 60, false}, {12, 0x5a, kindTerminating, 61, false},
	{12, 0x66, kindTerminating, 62, false}, {12, 0x67, kindTerminating, 63, false},
}

// Make up codes, Table 3a/T.4. Index i holds the run length 64*(i+1).
var whiteMakeupCodes = [27]code{
	{5, 0x1b, kindMakeup, 64, false}, {5, 0x12, kindMakeup, 128, false},
	{6, 0x17, kindMakeup, 192, false}, {7, 0x37, kindMakeup, 256, false},
	{8, 0x36, kindMakeup, 320, false}, {8, 0x37, kindMakeup, 384, false},
	{8, 0x64, kindMakeup, 448, false}, {8, 0x65, kindMakeup, 512, false},
	{8, 0x68, kindMakeup, 576, false}, {8, 0x67, kindMakeup, 640, false},
	{9, 0xcc, kindMakeup, 704, false}, {9, 0xcd, kindMakeup, 768, false},
	{9, 0xd2, kindMakeup, 832, false}, {9, 0xd3, kindMakeup, 896, false},
	{9, 0xd4, kindMakeup, 960, false}, {9, 0xd5, kindMakeup, 1024, false},
	{9, 0xd6, kindMakeup, 1088, false}, {9, 0xd7, kindMakeup, 1152, false},
	{9, 0xd8, kindMakeup, 1216, false}, {9, 0xd9, kindMakeup, 1280, false},
	{9, 0xda, kindMakeup, 1344, false}, {9, 0xdb, kindMakeup, 1408, false},
	{9, 0x98, kindMakeup, 1472, false}, {9, 0x99, kindMakeup, 1536, false},
	{9, 0x9a, kindMakeup, 1600, false}, {6, 0x18, kindMakeup, 1664, false},
	{9, 0x9b, kindMakeup, 1728, false},
}

var blackMakeupCodes = [27]code{
	{10, 0x0f, kindMakeup, 64, false}, {12, 0xc8, kindMakeup, 128, false},
	{12, 0xc9, kindMakeup, 192, false}, {12, 0x5b, kindMakeup, 256, false},
	{12, 0x33, kindMakeup, 320, false}, {12, 0x34, kindMakeup, 384, false},
	{12, 0x35, kindMakeup, 448, false}, {13, 0x6c, kindMakeup, 512, false},
	{13, 0x6d, kindMakeup, 576, false}, {13, 0x4a, kindMakeup, 640, false},
	{13, 0x4b, kindMakeup, 704, false}, {13, 0x4c, kindMakeup, 768, false},
	{13, 0x4d, kindMakeup, 832, false}, {13, 0x72, kindMakeup, 896, false},
	{13, 0x73, kindMakeup, 960, false}, {13, 0x74, kindMakeup, 1024, false},
	{13, 0x75, kindMakeup, 1088, false}, {13, 0x76, kindMakeup, 1152, false},
	{13, 0x77, kindMakeup, 1216, false}, {13, 0x52, kindMakeup, 1280, false},
	{13, 0x53, kindMakeup, 1344, false}, {13, 0x54, kindMakeup, 1408, false},
	{13, 0x55, kindMakeup, 1472, false}, {13, 0x5a, kindMakeup, 1536, false},
	{13, 0x5b, kindMakeup, 1600, false}, {13, 0x64, kindMakeup, 1664, false},
	{13, 0x65, kindMakeup, 1728, false},
}

// Extended make up codes, shared by both colours (Table 3b/T.4).
// Index i holds the run length 1792+64*i.
var extendedMakeupCodes = [13]code{
	{11, 0x08, kindMakeup, 1792, false}, {11, 0x0c, kindMakeup, 1856, false},
	{11, 0x0d, kindMakeup, 1920, false}, {12, 0x12, kindMakeup, 1984, false},
	{12, 0x13, kindMakeup, 2048, false}, {12, 0x14, kindMakeup, 2112, false},
	{12, 0x15, kindMakeup, 2176, false}, {12, 0x16, kindMakeup, 2240, false},
	{12, 0x17, kindMakeup, 2304, false}, {12, 0x1c, kindMakeup, 2368, false},
	{12, 0x1d, kindMakeup, 2432, false}, {12, 0x1e, kindMakeup, 2496, false},
	{12, 0x1f, kindMakeup, 2560, false},
}

// Mode codes of the two-dimensional coding scheme (Table 4/T.4).
var (
	passCode       = code{length: 4, bits: 0x1, kind: kindPass}
	horizontalCode = code{length: 3, bits: 0x1, kind: kindHorizontal}
)

// verticalCodes is indexed by a1 - b1 + 3.
var verticalCodes = [7]code{
	{7, 0x02, kindVertical, -3, false},
	{6, 0x02, kindVertical, -2, false},
	{3, 0x02, kindVertical, -1, false},
	{1, 0x01, kindVertical, 0, false},
	{3, 0x03, kindVertical, 1, false},
	{6, 0x03, kindVertical, 2, false},
	{7, 0x03, kindVertical, 3, false},
}

// Uncompressed mode codes (Table 5/T.4). The exit codes include the
// trailing colour bit T.
var uncompressedCodes = [16]code{
	{1, 0x01, kindUncompressed, 0, true},
	{2, 0x01, kindUncompressed, 1, true},
	{3, 0x01, kindUncompressed, 2, true},
	{4, 0x01, kindUncompressed, 3, true},
	{5, 0x01, kindUncompressed, 4, true},
	{6, 0x01, kindUncompressed, 5, false},

	{8, 0x02, kindUncompressedExit, 0, false}, {8, 0x03, kindUncompressedExit, 0, true},
	{9, 0x02, kindUncompressedExit, 1, false}, {9, 0x03, kindUncompressedExit, 1, true},
	{10, 0x02, kindUncompressedExit, 2, false}, {10, 0x03, kindUncompressedExit, 2, true},
	{11, 0x02, kindUncompressedExit, 3, false}, {11, 0x03, kindUncompressedExit, 3, true},
	{12, 0x02, kindUncompressedExit, 4, false}, {12, 0x03, kindUncompressedExit, 4, true},
}
