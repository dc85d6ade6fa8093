package formatter

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_DrawsAndClears(t *testing.T) {
	var out syncBuffer
	stop := StartSpinner(&out, "Cargando catálogo")

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("Cargando catálogo"))
	}, time.Second, 10*time.Millisecond)

	stop()
	stop()
	assert.True(t, bytes.HasSuffix([]byte(out.String()), []byte("\r\033[K")))
}
