package sat

// lowWaterMark is the minimum headroom (bytes of unused capacity) the
// buffer guarantees after a grow, matching the original's
// SIZE_LOW_WATERMARK and spec §8 property 6.
const lowWaterMark = 512

// buffer is the parser's growable input region (spec §4.6 "Buffer").
//
// Grounded on _examples/original_source/src/sat.cc's Buf struct, which
// tracks five raw pointers into a realloc'd C buffer and rebases all of
// them in lockstep whenever a grow moves the allocation. Go slices
// can't alias a moved backing array the way a realloc'd C pointer can,
// but they don't need to: tracking the same five cursors as plain int
// offsets into data means a grow (append-driven reallocation) never
// invalidates them — no rebasing step is needed at all, which is the
// whole of spec §9's "Global state"/pointer-stability discussion
// resolved for free by using a language with slice-relative addressing.
type buffer struct {
	data []byte // data[:len(data)] is committed, parseable content

	pos        int // current read position
	lineStart  int // start of the current source line
	tokenStart int // start of the token currently being scanned
	tokenEnd   int // end of the token currently being scanned (exclusive)

	isEnd    bool // true once the caller has signaled end of input
	pageSize int
}

func newBuffer(pageSize int) *buffer {
	if pageSize <= 0 {
		pageSize = 4096
	}
	return &buffer{pageSize: pageSize}
}

// ensureFillable guarantees at least lowWaterMark bytes of headroom
// past the committed data, growing by one page at a time, and returns
// the resulting headroom.
func (b *buffer) ensureFillable() int {
	headroom := cap(b.data) - len(b.data)
	for headroom < lowWaterMark {
		grown := make([]byte, len(b.data), cap(b.data)+b.pageSize)
		copy(grown, b.data)
		b.data = grown
		headroom = cap(b.data) - len(b.data)
	}
	return headroom
}

// acquireBuffer returns the writable region past the committed data,
// along with its length, growing the buffer first if needed.
func (b *buffer) acquireBuffer() ([]byte, int) {
	headroom := b.ensureFillable()
	return b.data[len(b.data):cap(b.data)], headroom
}

// commit extends the committed region by n bytes (written by the
// caller into the slice acquireBuffer returned) and optionally marks
// end of input.
func (b *buffer) commit(n int, endOfInput bool) {
	b.data = b.data[:len(b.data)+n]
	if endOfInput {
		b.isEnd = true
	}
}

func (b *buffer) atEnd() bool { return b.pos >= len(b.data) }

func (b *buffer) current() byte { return b.data[b.pos] }

func (b *buffer) consume() { b.pos++ }

func (b *buffer) setTokenStart() { b.tokenStart = b.pos }
func (b *buffer) setTokenEnd()   { b.tokenEnd = b.pos }

func (b *buffer) tokenText() string {
	return string(b.data[b.tokenStart:b.tokenEnd])
}

// column returns the 1-based column of the current read position.
func (b *buffer) column() int {
	return b.pos - b.lineStart + 1
}

// currentLineText returns the full text of the line the read cursor is
// currently on, used for diagnostic rendering (spec §6 "Error
// surface").
func (b *buffer) currentLineText() string {
	start := b.lineStart
	if start > len(b.data) {
		start = len(b.data)
	}
	end := b.pos
	if end < start {
		end = start
	}
	for end < len(b.data) && b.data[end] != '\n' {
		end++
	}
	return string(b.data[start:end])
}
