package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ: buffer entries vào channel và ghi ra các writer
// trong một goroutine riêng để không block request handling.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters tạo async hook với nhiều writers.
// bufferSize <= 0 sẽ dùng mặc định 1000 entries.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không block.
// Channel đầy thì bỏ qua entry để request handling không bị chặn.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi trực tiếp (fallback cho các log cuối khi shutdown)
		data, err := h.format(entry)
		if err != nil {
			return err
		}
		for _, w := range h.writers {
			_, _ = w.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// channel đầy, bỏ qua
	}
	return nil
}

func (h *AsyncHook) format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// processEntries xử lý entries trong goroutine riêng.
// Có recover để panic trong formatter/writer không làm crash server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Không dùng logger ở đây để tránh vòng lặp, ghi thẳng stderr
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] %v\n", r)
					debug.PrintStack()
				}
			}()

			data, err := h.format(entry)
			if err != nil {
				return
			}
			for _, w := range h.writers {
				if _, err := w.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// Close đóng hook và đợi các entry còn lại được ghi xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
