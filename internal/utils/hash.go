package utils

import (
	"strconv"
	"unicode/utf16"
)

// LegacyPasswordChecksum computes the rolling 32-bit checksum the original
// web client used in place of a password hash:
//
//	hash = hash*31 + codeUnit
//
// evaluated over the UTF-16 code units of the input, wrapped to a signed
// 32-bit integer at every step, and rendered as a base-10 string (so the
// result may be negative, e.g. "-1358700910" for "2358688").
//
// This is NOT a cryptographic hash: it is unsalted, trivially reversible by
// brute force, and collision-prone. It is kept solely because the values
// already stored in the users table were produced by this exact scheme and
// login compares them by string equality. Do not use it for anything else.
func LegacyPasswordChecksum(password string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(password)) {
		hash = hash*31 + int32(unit)
	}
	return strconv.FormatInt(int64(hash), 10)
}
