package dnssecval

import "sync"

// scratchInitialCap is a reasonable starting capacity for a canonicalized
// RRset buffer; it grows past this for large RRsets without complaint.
const scratchInitialCap = 4096

var scratchPool = sync.Pool{
	New: func() interface{} {
		return &ScratchBuffer{buf: make([]byte, 0, scratchInitialCap)}
	},
}

// GetScratch retrieves a cleared ScratchBuffer from the pool.
func GetScratch() *ScratchBuffer {
	s := scratchPool.Get().(*ScratchBuffer)
	s.Clear()
	return s
}

// PutScratch returns a ScratchBuffer to the pool for reuse. Its
// contents are undefined after this call.
func PutScratch(s *ScratchBuffer) {
	scratchPool.Put(s)
}

// ScratchBuffer is a growable, append-only byte buffer used to build the
// canonical byte stream a signature covers. Unlike packet.BytePacketBuffer
// it has no fixed capacity and no random-access cursor semantics beyond
// a tail position, since canonicalization only ever appends.
type ScratchBuffer struct {
	buf []byte
}

// NewScratchBuffer returns a fresh, empty ScratchBuffer not drawn from
// the pool (useful for tests that want isolation from pooled reuse).
func NewScratchBuffer() *ScratchBuffer {
	return &ScratchBuffer{buf: make([]byte, 0, scratchInitialCap)}
}

// Clear resets the buffer to empty without releasing its backing array.
func (s *ScratchBuffer) Clear() {
	s.buf = s.buf[:0]
}

// Len returns the number of bytes written so far.
func (s *ScratchBuffer) Len() int {
	return len(s.buf)
}

// Bytes returns the current contents. The slice is only valid until the
// next Clear/Write call on this buffer.
func (s *ScratchBuffer) Bytes() []byte {
	return s.buf
}

// WriteByte appends a single byte.
func (s *ScratchBuffer) WriteByte(b byte) {
	s.buf = append(s.buf, b)
}

// Write appends raw bytes.
func (s *ScratchBuffer) Write(p []byte) {
	s.buf = append(s.buf, p...)
}

// WriteU16 appends a big-endian uint16.
func (s *ScratchBuffer) WriteU16(v uint16) {
	s.buf = append(s.buf, byte(v>>8), byte(v))
}

// WriteU32 appends a big-endian uint32.
func (s *ScratchBuffer) WriteU32(v uint32) {
	s.buf = append(s.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
