package format

import (
	"sync"

	"github.com/wippyai/textcore"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxCapCP  = 256 // max code points kept per buffer
	poolInitCapCP = 8
)

// code point buffer pool for decoding option text
var cpPool = sync.Pool{
	New: func() any {
		buf := make([]textcore.CodePoint, 0, poolInitCapCP)
		return &buf
	},
}

func getCodePoints() *[]textcore.CodePoint {
	return cpPool.Get().(*[]textcore.CodePoint)
}

func putCodePoints(buf *[]textcore.CodePoint) {
	if buf == nil || cap(*buf) > poolMaxCapCP {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	cpPool.Put(buf)
}
