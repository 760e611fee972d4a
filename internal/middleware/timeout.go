package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packing-service/internal/domain/dto"
	"github.com/guttosm/packing-service/internal/i18n"
	"github.com/guttosm/packing-service/internal/logger"
)

// Timeout puts a deadline of d on the request context. Handlers that have
// not finished when it expires are answered with a 504 and whatever they
// write afterwards is discarded. Handler output is buffered until the handler
// returns, and the middleware waits for it before giving the context back to gin.
// A non-positive d disables the deadline.
func Timeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		original := c.Writer
		buffered := newBufferedWriter(original)
		c.Writer = buffered

		var panicVal interface{}
		done := make(chan struct{})
		go func() {
			defer close(done)
			defer func() {
				panicVal = recover()
			}()
			c.Next()
		}()

		timedOut := false
		select {
		case <-done:
		case <-ctx.Done():
			buffered.expire()
			timedOut = true
			<-done
		}
		c.Writer = original

		if !timedOut {
			if panicVal != nil {
				panic(panicVal) // Surface to Recovery on the serving goroutine.
			}
			buffered.flushTo(original)
			return
		}

		if panicVal != nil {
			log := logger.Logger()
			log.Error().
				Str("request_id", GetRequestID(c)).
				Str("path", c.Request.URL.Path).
				Interface("panic", panicVal).
				Msg("Panic after request timeout")
		}
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.Abort()
			return
		}
		message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout,
			dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
	}
}

// bufferedWriter holds a handler's response until the Timeout middleware
// decides whether it reaches the client. Once expired it drops every write.
type bufferedWriter struct {
	gin.ResponseWriter

	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	written bool
	expired bool
}

func newBufferedWriter(w gin.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{
		ResponseWriter: w,
		header:         w.Header().Clone(),
		status:         w.Status(),
	}
}

func (w *bufferedWriter) expire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expired = true
}

func (w *bufferedWriter) Header() http.Header {
	return w.header
}

func (w *bufferedWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired || w.written || code <= 0 {
		return
	}
	w.status = code
}

func (w *bufferedWriter) WriteHeaderNow() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.expired {
		w.written = true
	}
}

func (w *bufferedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return 0, http.ErrHandlerTimeout
	}
	w.written = true
	return w.body.Write(p)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *bufferedWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *bufferedWriter) Size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.written {
		return -1
	}
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Flush is a no-op; output leaves in one piece when the handler returns.
func (w *bufferedWriter) Flush() {}

func (w *bufferedWriter) flushTo(dst gin.ResponseWriter) {
	w.mu.Lock()
	defer w.mu.Unlock()

	h := dst.Header()
	for k := range h {
		if _, ok := w.header[k]; !ok {
			h.Del(k)
		}
	}
	for k, v := range w.header {
		h[k] = v
	}
	dst.WriteHeader(w.status)
	if w.body.Len() > 0 {
		_, _ = dst.Write(w.body.Bytes())
	} else if w.written {
		dst.WriteHeaderNow()
	}
}
