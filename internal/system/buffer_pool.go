package system

import (
	"bytes"
	"sync"
)

// maxPooledBuffer ограничивает емкость буферов, возвращаемых в пул.
const maxPooledBuffer = 1 << 20

// BufferPool предоставляет повторное использование bytes.Buffer для
// кодирования сообщений на каждом тике и снижает нагрузку на GC.
type BufferPool struct {
	pool sync.Pool
}

var globalPool = NewBufferPool()

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

// GetBuffer возвращает пустой буфер из общего пула.
func GetBuffer() *bytes.Buffer {
	return globalPool.Get()
}

// PutBuffer возвращает буфер в общий пул для повторного использования.
func PutBuffer(buf *bytes.Buffer) {
	globalPool.Put(buf)
}

func (p *BufferPool) Get() *bytes.Buffer {
	buf := p.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func (p *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuffer {
		return
	}
	p.pool.Put(buf)
}
