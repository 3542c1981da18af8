package iox

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadAllContext(t *testing.T) {
	t.Run("with success", func(t *testing.T) {
		data, err := ReadAllContext(context.Background(), strings.NewReader("ok"), 2)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "ok" {
			t.Fatal("unexpected data", string(data))
		}
	})

	t.Run("with an empty body", func(t *testing.T) {
		data, err := ReadAllContext(context.Background(), strings.NewReader(""), 16)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != 0 {
			t.Fatal("unexpected data", string(data))
		}
	})

	t.Run("with too much data", func(t *testing.T) {
		data, err := ReadAllContext(context.Background(), strings.NewReader("GIF89a"), 5)
		if !errors.Is(err, ErrTooLarge) {
			t.Fatal("not the error we expected", err)
		}
		if string(data) != "GIF89" {
			t.Fatal("expected the first bytes", string(data))
		}
	})

	t.Run("with failure", func(t *testing.T) {
		expected := errors.New("mocked error")
		r := &MockableReader{
			MockRead: func(b []byte) (int, error) {
				return 0, expected
			},
		}
		data, err := ReadAllContext(context.Background(), r, 16)
		if !errors.Is(err, expected) {
			t.Fatal("not the error we expected", err)
		}
		if data != nil {
			t.Fatal("expected nil data")
		}
	})

	t.Run("with cancelled context", func(t *testing.T) {
		unblock := make(chan bool)
		defer close(unblock)
		r := &MockableReader{
			MockRead: func(b []byte) (int, error) {
				<-unblock
				return 0, io.EOF
			},
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		data, err := ReadAllContext(ctx, r, 16)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatal("not the error we expected", err)
		}
		if data != nil {
			t.Fatal("expected nil data")
		}
	})
}
