// Package natsort orders strings the way a person reads them: runs of
// digits compare by numeric value instead of byte by byte, so "item9"
// sorts before "item10".
package natsort

import "sort"

// Less reports whether a orders before b under natural ordering.
func Less(a, b string) bool {
	for a != "" && b != "" {
		aTok, aNum, aRest := nextToken(a)
		bTok, bNum, bRest := nextToken(b)
		switch {
		case aNum && bNum:
			an, bn := parseUint(aTok), parseUint(bTok)
			if an != bn {
				return an < bn
			}
			// Equal values with different widths, e.g. "007" vs "7".
			if aTok != bTok {
				return aTok < bTok
			}
		case aNum != bNum:
			// A digit run sorts before a text run, matching byte order
			// since digits precede letters in ASCII.
			return aNum
		default:
			if aTok != bTok {
				return aTok < bTok
			}
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// Strings sorts ss in place under natural ordering.
func Strings(ss []string) {
	sort.Slice(ss, func(i, j int) bool { return Less(ss[i], ss[j]) })
}

// nextToken splits off the leading run of s, which is either all digits
// or digit-free.
func nextToken(s string) (tok string, isNum bool, rest string) {
	isNum = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == isNum {
		i++
	}
	return s[:i], isNum, s[i:]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseUint reads a digit run without strconv's length limits. Overflow is
// acceptable here: names with 20-digit runs have no meaningful order anyway.
func parseUint(s string) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		n = n*10 + uint64(s[i]-'0')
	}
	return n
}
