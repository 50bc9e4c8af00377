package gqlparser

import "strconv"

// parseInt and parseFloat tolerate a malformed raw literal by falling
// back to zero; a lexically invalid number literal is the parser's
// concern, not this adapter's.
func parseInt(raw string) int64 {
	n, _ := strconv.ParseInt(raw, 10, 64)
	return n
}

func parseFloat(raw string) float64 {
	f, _ := strconv.ParseFloat(raw, 64)
	return f
}
