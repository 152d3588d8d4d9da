package renderer

import "sync"

// Default sizes for buffer allocation
const (
	defaultGlyphModules = 25 // one 5x5 glyph
	defaultLineRunes    = 32

	// Buffers larger than these are dropped on release so one huge
	// render does not pin memory in the pool.
	maxRetainModules = 256
	maxRetainRunes   = 1024
)

// modulePool recycles the per-glyph module slices of a Layout.
var modulePool = sync.Pool{
	New: func() interface{} {
		buf := make([]Module, 0, defaultGlyphModules)
		return &buf
	},
}

// runeSlicePool recycles the rune buffers used to split text into lines.
var runeSlicePool = sync.Pool{
	New: func() interface{} {
		buf := make([]rune, 0, defaultLineRunes)
		return &buf
	},
}

// acquireModules gets an empty module slice with room for n modules.
func acquireModules(n int) []Module {
	bufPtr := modulePool.Get().(*[]Module)
	buf := (*bufPtr)[:0]
	if cap(buf) < n {
		buf = make([]Module, 0, n)
	}
	return buf
}

// releaseModules returns a module slice to the pool. Shape slices inside
// the modules are dropped so the pool does not keep geometry alive.
func releaseModules(buf []Module) {
	if buf == nil || cap(buf) > maxRetainModules {
		return
	}
	for i := range buf {
		buf[i] = Module{}
	}
	buf = buf[:0]
	modulePool.Put(&buf)
}

func acquireRunes() []rune {
	bufPtr := runeSlicePool.Get().(*[]rune)
	return (*bufPtr)[:0]
}

func releaseRunes(buf []rune) {
	if buf == nil || cap(buf) > maxRetainRunes {
		return
	}
	buf = buf[:0]
	runeSlicePool.Put(&buf)
}
