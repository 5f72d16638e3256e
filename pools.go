package ifc

import "sync"

var renderBufPool = &sync.Pool{
	New: func() any {
		return make([]byte, 0, 65536)
	},
}

func releaseRenderBuf(b []byte) {
	renderBufPool.Put(b[:0])
}
