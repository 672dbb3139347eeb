package log

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
)

// RawLogger records the raw bytes exchanged on API connections.
type RawLogger interface {
	Log(remote string, in bool, data []byte)
}

type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Log writes one line per chunk: timestamp, remote, direction, size and the
// quoted payload. in=true means client->server.
func (r *rawLogger) Log(remote string, in bool, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}
	dir := "S->C"
	if in {
		dir = "C->S"
	}
	line := fmt.Sprintf("%s %s %s %d bytes: %s\n",
		r.now().Format("2006/01/02 15:04:05.000"),
		remote,
		dir,
		len(data),
		strconv.Quote(string(data)))

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}
