package ccitt

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
)

// bitString packs a string of '0' and '1' into bytes, MSB first, padding
// with zeros. Spaces are ignored.
func bitString(s string) []byte {
	s = strings.ReplaceAll(s, " ", "")
	out := make([]byte, (len(s)+7)/8)
	for i, c := range s {
		if c == '1' {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}

func allSets(t *codeTables) map[string]*codeSet {
	return map[string]*codeSet{
		"white":        &t.white,
		"black":        &t.black,
		"modes":        &t.modes,
		"uncompressed": &t.uncompressed,
	}
}

func TestBuildTablesIdempotent(t *testing.T) {
	t1, t2 := buildTables(), buildTables()
	if !reflect.DeepEqual(t1, t2) {
		t.Fatal("tables built twice differ")
	}
	if defaultTables() != defaultTables() {
		t.Fatal("default tables should be shared")
	}
}

func TestCodeTableSizes(t *testing.T) {
	tables := buildTables()
	counts := map[string]int{
		"white":        64 + 27 + 13 + 1,
		"black":        64 + 27 + 13 + 1,
		"modes":        2 + 7 + 1,
		"uncompressed": 16,
	}
	for name, set := range allSets(tables) {
		n := 0
		for length, codes := range set.byLength {
			for _, c := range codes {
				if c.length != length {
					t.Errorf("%s: code %b registered with length %d instead of %d", name, c.bits, length, c.length)
				}
				if c.bits >= 1<<uint(c.length) {
					t.Errorf("%s: code %b does not fit in %d bits", name, c.bits, c.length)
				}
			}
			n += len(codes)
		}
		if n != counts[name] {
			t.Errorf("%s: expected %d codes, got %d", name, counts[name], n)
		}
	}

	for i, c := range whiteMakeupCodes {
		if c.value != 64*(i+1) || blackMakeupCodes[i].value != c.value {
			t.Errorf("invalid make up code at %d", i)
		}
	}
	for i, c := range extendedMakeupCodes {
		if c.value != 1792+64*i {
			t.Errorf("invalid extended make up code at %d", i)
		}
	}
	for i, c := range verticalCodes {
		if c.value != i-3 {
			t.Errorf("invalid vertical code at %d", i)
		}
	}
}

// every set must be decodable without ambiguity
func TestPrefixFree(t *testing.T) {
	for name, set := range allSets(buildTables()) {
		var all []*code
		for _, codes := range set.byLength {
			all = append(all, codes...)
		}
		for _, c1 := range all {
			for _, c2 := range all {
				if c1 == c2 || c1.length > c2.length {
					continue
				}
				if c2.bits>>uint(c2.length-c1.length) == c1.bits {
					t.Errorf("%s: %0*b is a prefix of %0*b", name, c1.length, c1.bits, c2.length, c2.bits)
				}
			}
		}
	}
}

func TestLookupAgreement(t *testing.T) {
	tables := buildTables()
	for name, set := range allSets(tables) {
		for length, codes := range set.byLength {
			for _, c := range codes {
				if length <= lookupBits {
					free := uint(lookupBits - length)
					for low := 0; low < 1<<free; low++ {
						if got := set.lookup[int(c.bits)<<free|low]; got != c {
							t.Fatalf("%s: lookup slot for %0*b holds %v", name, length, c.bits, got)
						}
					}
				} else if got := set.lookup[c.bits>>uint(length-lookupBits)]; got != &invalidCode {
					t.Fatalf("%s: long code %0*b shadowed by %v", name, length, c.bits, got)
				}

				// the fast path and the bit by bit search must agree,
				// whatever follows the code
				for _, suffix := range []string{"", "1", "0000", "1111111111111111", "0101010101010101"} {
					var w bytes.Buffer
					bw := bitWriter{dst: &w}
					bw.put(c)
					for _, s := range suffix {
						bw.putBits(uint32(s-'0'), 1)
					}
					bw.flush()
					data := w.Bytes()
					src := bytes.NewReader(data)
					br := bitReader{src: src}
					got, err := br.readCode(set)
					if err != nil {
						t.Fatalf("%s: code %0*b: %s", name, length, c.bits, err)
					}
					if got != c {
						t.Fatalf("%s: code %0*b: read %0*b", name, length, c.bits, got.length, got.bits)
					}
					if left := br.nbits + 8*src.Len(); left != 8*len(data)-length {
						t.Fatalf("%s: code %0*b: %d bits left", name, length, c.bits, left)
					}
				}
			}
		}
	}
}

func TestReadCodeEOL(t *testing.T) {
	tables := defaultTables()
	// EOL preceded by fill bits, in every set
	for name, set := range allSets(tables) {
		br := bitReader{src: bytes.NewReader(bitString("0000000 000000000001 1"))}
		c, err := br.readCode(set)
		if err != nil {
			t.Fatal(err)
		}
		if c.kind != kindEOL {
			t.Fatalf("%s: expected EOL, got %v", name, c)
		}
		if b, _ := br.getBit(); b != 1 {
			t.Fatalf("%s: EOL not entirely consumed", name)
		}
	}
}

func TestReadCodeInvalid(t *testing.T) {
	tables := defaultTables()

	// 13 bits without match in the mode codes
	br := bitReader{src: bytes.NewReader(bitString("0000001000000 0000"))}
	if _, err := br.readCode(&tables.modes); err != errInvalidCode {
		t.Fatalf("expected invalid code, got %v", err)
	}

	// trailing zero bits are padding
	br = bitReader{src: bytes.NewReader([]byte{0})}
	if _, err := br.readCode(&tables.white); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}

	// a truncated code is not
	br = bitReader{src: bytes.NewReader([]byte{0x01})}
	if _, err := br.readCode(&tables.black); err != errPrematureEnd {
		t.Fatal("expected error on truncated code")
	}
}
