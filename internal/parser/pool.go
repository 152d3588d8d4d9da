package parser

import (
	"bytes"
	"sync"
)

const (
	// readBufferSize fits most alphabet files in one allocation
	readBufferSize = 16 * 1024
	// maxRetainReadBuffer keeps one huge file from pinning memory
	maxRetainReadBuffer = 1024 * 1024
)

// readBufferPool recycles the buffers Parse reads documents into.
var readBufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, readBufferSize))
	},
}

func acquireReadBuffer() *bytes.Buffer {
	buf, ok := readBufferPool.Get().(*bytes.Buffer)
	if !ok {
		return bytes.NewBuffer(make([]byte, 0, readBufferSize))
	}
	buf.Reset()
	return buf
}

// releaseReadBuffer returns buf to the pool unless it grew past the
// retention limit.
func releaseReadBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxRetainReadBuffer {
		return
	}
	buf.Reset()
	readBufferPool.Put(buf)
}
