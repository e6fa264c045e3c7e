package ccitt

import "sync"

// lookupBits is the number of pending bits used to index the direct
// lookup tables.
const lookupBits = 8

// codeSet gathers the codes which may appear at a given point of the
// stream. Codes are kept sorted by length for the bit by bit search, and
// the short ones are also spread over a direct lookup table indexed by the
// next lookupBits pending bits.
type codeSet struct {
	byLength [maxCodeLength + 1][]*code
	lookup   [1 << lookupBits]*code
}

// codeTables holds every code set. It is built once and then only read,
// so that it may be shared between concurrent streams.
type codeTables struct {
	white, black codeSet
	modes        codeSet // two-dimensional mode codes
	uncompressed codeSet
}

var (
	tablesOnce sync.Once
	tables     *codeTables
)

// defaultTables returns the process wide tables, built on first use.
func defaultTables() *codeTables {
	tablesOnce.Do(func() { tables = buildTables() })
	return tables
}

// buildTables returns freshly built tables. It only reads the static code
// arrays.
func buildTables() *codeTables {
	var t codeTables

	t.white.addAll(whiteTerminatingCodes[:])
	t.white.addAll(whiteMakeupCodes[:])
	t.white.addAll(extendedMakeupCodes[:])
	t.white.add(&extension1DCode)

	t.black.addAll(blackTerminatingCodes[:])
	t.black.addAll(blackMakeupCodes[:])
	t.black.addAll(extendedMakeupCodes[:])
	t.black.add(&extension1DCode)

	t.modes.add(&passCode, &horizontalCode, &extension2DCode)
	t.modes.addAll(verticalCodes[:])

	t.uncompressed.addAll(uncompressedCodes[:])

	for _, set := range [...]*codeSet{&t.white, &t.black, &t.modes, &t.uncompressed} {
		set.buildLookup()
	}
	return &t
}

func (s *codeSet) add(codes ...*code) {
	for _, c := range codes {
		s.byLength[c.length] = append(s.byLength[c.length], c)
	}
}

// addAll registers pointers to the elements of codes, which must be
// backed by one of the static arrays.
func (s *codeSet) addAll(codes []code) {
	for i := range codes {
		s.add(&codes[i])
	}
}

// buildLookup writes every code not longer than lookupBits in all the
// slots whose leading bits match it, then marks the remaining slots
// invalid.
func (s *codeSet) buildLookup() {
	for length := 1; length <= lookupBits; length++ {
		free := lookupBits - length
		for _, c := range s.byLength[length] {
			first := int(c.bits) << free
			for i := 0; i < 1<<free; i++ {
				s.lookup[first+i] = c
			}
		}
	}
	for i, c := range s.lookup {
		if c == nil {
			s.lookup[i] = &invalidCode
		}
	}
}

// find returns the code of the given length matching bits, or nil.
func (s *codeSet) find(bits uint32, length int) *code {
	for _, c := range s.byLength[length] {
		if uint32(c.bits) == bits {
			return c
		}
	}
	return nil
}

// runSet returns the run length codes for the given colour.
func (t *codeTables) runSet(black bool) *codeSet {
	if black {
		return &t.black
	}
	return &t.white
}
