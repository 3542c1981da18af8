// Package iox reads response bodies without outliving the request context.
package iox

import (
	"context"
	"errors"
	"io"
)

// ErrTooLarge indicates that a reader returned more bytes than allowed.
var ErrTooLarge = errors.New("iox: too much data")

// ReadAllContext reads at most limit bytes from r in a background goroutine.
// When r has more to offer, it returns the first limit bytes along with
// [ErrTooLarge], so callers can still inspect them. When ctx is done
// first, we return ctx.Err() and the goroutine keeps running until the
// caller closes the connection underlying r.
func ReadAllContext(ctx context.Context, r io.Reader, limit int64) ([]byte, error) {
	type outcome struct {
		data []byte
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		data, err := io.ReadAll(io.LimitReader(r, limit+1))
		switch {
		case err != nil:
			ch <- outcome{err: err}
		case int64(len(data)) > limit:
			ch <- outcome{data: data[:limit], err: ErrTooLarge}
		default:
			ch <- outcome{data: data}
		}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-ch:
		return out.data, out.err
	}
}

// MockableReader is an [io.Reader] for tests.
type MockableReader struct {
	MockRead func(b []byte) (int, error)
}

var _ io.Reader = &MockableReader{}

// Read calls MockRead.
func (r *MockableReader) Read(b []byte) (int, error) {
	return r.MockRead(b)
}
