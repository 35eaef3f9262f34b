/*
Package fastdec provides fast decimal conversion for unsigned 64-bit
integers.

Fastdec provides the following features:

  - Append-style formatting into caller-owned byte slices, so hot
    paths may format numbers without memory allocations.
  - Backward fill into a fixed-size scratch buffer sized to the
    20-digit worst case, so no reversal pass is needed.
  - Line-oriented emission: the digits and the trailing newline are
    written to the destination io.Writer in a single Write call.
  - Strict parsing covering the full uint64 range, with overflow
    detection on 20-digit inputs.
*/
package fastdec
