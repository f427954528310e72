package app

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
)

const (
	FailureTimeout    = "timeout"
	FailureConnection = "connection"
	FailureOther      = "other"
)

// ClassifyError группирует ошибку синхронизации для верхнеуровневого
// отчёта. Таймауты проверяются раньше сетевых ошибок: *net.OpError
// бывает и тем и другим.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureConnection
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return FailureConnection
	}
	return FailureOther
}
