package strpool

import (
	"strings"
	"sync"
)

var pool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

// Get returns an empty builder from the pool.
func Get() (b *strings.Builder) {
	ifc := pool.Get()
	if ifc != nil {
		b = ifc.(*strings.Builder)
	}
	return
}

// Put resets b and hands it back to the pool.
func Put(b *strings.Builder) {
	b.Reset()
	pool.Put(b)
}
