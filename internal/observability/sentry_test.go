package observability

import (
	"errors"
	"testing"
)

func TestInitSentryWithoutDSNIsNoop(t *testing.T) {
	flush, err := InitSentry("", "test", "dev")
	if err != nil {
		t.Fatalf("InitSentry() error = %v", err)
	}
	flush()
	CaptureErr(errors.New("boom"))
	CaptureErr(nil)
}

func TestInitSentryRejectsMalformedDSN(t *testing.T) {
	flush, err := InitSentry("not a dsn", "test", "dev")
	if err == nil {
		t.Fatal("expected an error for a malformed DSN")
	}
	flush()
}
