package injectable

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ============================================================================
// Shared Test Types
// ============================================================================

// TService is a basic injectable for registration tests.
type TService struct {
	Value int
}

// TInterface is implemented by TService through a pointer receiver.
type TInterface interface {
	Get() int
}

func (s *TService) Get() int { return s.Value }

// TOther never implements TInterface; used for assignability failures.
type TOther struct{}

// ============================================================================
// Record Helpers
// ============================================================================

var testRecordSeq atomic.Int64

// record builds a minimal injectable for filter and resolve tests.
// Each call yields a distinct identity and unique ID.
func record(group string, primary bool) *Injectable {
	n := testRecordSeq.Add(1)
	return newInjectable(
		fmt.Sprintf("record-%d", n),
		func() (any, error) { return n, nil },
		group, primary, false,
	)
}

// ============================================================================
// Logging Helpers
// ============================================================================

// captureLogs returns a container whose diagnostics land in the
// returned buffer.
func captureLogs() (*Container, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	return New(WithLogger(logger)), &buf
}
