package fastdec

import (
	"fmt"
)

const (
	// maxUintChars is the number of decimal digits in the maximum
	// uint64 value, 18446744073709551615.
	maxUintChars = 20

	maxUint = 1<<64 - 1
)

// AppendUint appends decimal representation of n to dst and returns dst
// (which may be newly allocated).
//
// The representation contains no leading zeros. Zero is represented
// as "0".
func AppendUint(dst []byte, n uint64) []byte {
	var b [maxUintChars]byte
	buf := b[:]
	i := len(buf)
	var q uint64
	for n >= 10 {
		i--
		q = n / 10
		buf[i] = '0' + byte(n-q*10)
		n = q
	}
	i--
	buf[i] = '0' + byte(n)

	dst = append(dst, buf[i:]...)
	return dst
}

// AppendUintLine appends decimal representation of n followed by '\n'
// to dst and returns dst (which may be newly allocated).
func AppendUintLine(dst []byte, n uint64) []byte {
	var b [maxUintChars + 1]byte
	buf := b[:]
	i := len(buf) - 1
	buf[i] = '\n'
	var q uint64
	for n >= 10 {
		i--
		q = n / 10
		buf[i] = '0' + byte(n-q*10)
		n = q
	}
	i--
	buf[i] = '0' + byte(n)

	dst = append(dst, buf[i:]...)
	return dst
}

// UintLen returns the number of decimal digits in n.
//
// UintLen(0) is 1.
func UintLen(n uint64) int {
	l := 1
	for n >= 10 {
		n /= 10
		l++
	}
	return l
}

// ParseUint parses uint64 from buf.
//
// The whole buf must consist of decimal digits. Values exceeding the
// maximum uint64 value are rejected.
func ParseUint(buf []byte) (uint64, error) {
	v, n, err := parseUintBuf(buf)
	if err == nil && n != len(buf) {
		return 0, fmt.Errorf("only %d bytes out of %d bytes exhausted when parsing int %q", n, len(buf), buf)
	}
	return v, err
}

func parseUintBuf(b []byte) (uint64, int, error) {
	n := len(b)
	if n == 0 {
		return 0, 0, fmt.Errorf("empty integer")
	}
	var v uint64
	for i := 0; i < n; i++ {
		c := b[i]
		k := c - '0'
		if k > 9 {
			if i == 0 {
				return 0, i, fmt.Errorf("unexpected first char %c. Expected 0-9", c)
			}
			return v, i, nil
		}
		if i >= maxUintChars {
			return 0, i, fmt.Errorf("too long int %q", b[:i+1])
		}
		if v > maxUint/10 || (v == maxUint/10 && uint64(k) > maxUint%10) {
			return 0, i, fmt.Errorf("too big int %q", b[:i+1])
		}
		v = 10*v + uint64(k)
	}
	return v, n, nil
}
