package strutil

import (
	"bytes"
	"strings"
)

var manyZeros = bytes.Repeat([]byte{'0'}, 256)

// Zeros returns a string of count zeros.
func Zeros(count int) string {
	if count <= 0 {
		return ""
	}
	if count <= len(manyZeros) {
		return string(manyZeros[:count])
	}
	var b bytes.Buffer
	b.Grow(count)
	for i := 0; i < count/len(manyZeros); i++ {
		b.Write(manyZeros)
	}
	if rem := count % len(manyZeros); rem > 0 {
		b.Write(manyZeros[:rem])
	}
	return b.String()
}

// PadEnd appends fill bytes to s until its length reaches size.
func PadEnd(s string, size int, fill byte) string {
	if len(s) >= size {
		return s
	}
	var b strings.Builder
	b.Grow(size)
	b.WriteString(s)
	for i := len(s); i < size; i++ {
		b.WriteByte(fill)
	}
	return b.String()
}
