package cache

import (
	"context"
	"errors"
	"net"
	"testing"
)

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}

	netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	err := classify(netErr)
	if !IsRetryable(err) {
		t.Error("network errors should be retryable")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("network errors should wrap ErrNetwork")
	}

	plain := errors.New("WRONGPASS")
	if IsRetryable(classify(plain)) {
		t.Error("server errors should not be retryable")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "ftp://localhost"); err == nil {
		t.Error("expected error for non-redis URL")
	}
}
