package ais

import "strings"

// sixBitAlphabet is the AIS 6-bit character table. Index 0 is '@', the
// AIS null/terminator character; indices 1-31 are letters and symbols,
// 32 is space, the remainder digits and punctuation.
const sixBitAlphabet = "@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^- !\"#$%&`()*+,-./0123456789:;<=>?"

// ExtractText decodes a run of 6-bit characters starting at startBit and
// spanning totalBits bits through the AIS reverse alphabet, stopping at
// the first '@' and trimming trailing space padding.
func ExtractText(p Payload, startBit, totalBits int) string {
	if totalBits <= 0 || totalBits%6 != 0 {
		return ""
	}
	n := totalBits / 6
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		idx := ExtractUint(p, startBit+i*6, 6)
		if int(idx) >= len(sixBitAlphabet) {
			break
		}
		c := sixBitAlphabet[idx]
		if c == '@' {
			break
		}
		buf = append(buf, c)
	}
	return strings.TrimRight(string(buf), " ")
}
