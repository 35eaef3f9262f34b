package fastdec

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

var byteBufferPool bytebufferpool.Pool

// WriteUint writes decimal representation of n followed by '\n' to w.
//
// The digits and the trailing newline are emitted in a single Write
// call. The write error, if any, is returned as is.
func WriteUint(w io.Writer, n uint64) error {
	bb := byteBufferPool.Get()
	bb.B = AppendUintLine(bb.B[:0], n)
	_, err := w.Write(bb.B)
	byteBufferPool.Put(bb)
	return err
}

// Itoa returns decimal string representation of n.
func Itoa(n uint64) string {
	bb := byteBufferPool.Get()
	bb.B = AppendUint(bb.B[:0], n)
	s := string(bb.B)
	byteBufferPool.Put(bb)
	return s
}
