package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})
	return &buf
}

func TestRequestID(t *testing.T) {
	if got := RequestID(context.Background()); got != "-" {
		t.Fatalf("RequestID = %q, want -", got)
	}
	if got := RequestID(WithRequestID(context.Background(), "r1")); got != "r1" {
		t.Fatalf("RequestID = %q, want r1", got)
	}
}

func TestTimeLogsError(t *testing.T) {
	buf := captureLog(t)
	ctx := WithRequestID(context.Background(), "r2")

	err := errors.New("boom")
	Time(ctx, "op.fail")(&err)

	out := buf.String()
	if !strings.Contains(out, "req_id=r2 op=op.fail") || !strings.Contains(out, "err=boom") {
		t.Fatalf("log = %q", out)
	}
}

func TestTimeLogsSuccess(t *testing.T) {
	buf := captureLog(t)

	var err error
	Time(context.Background(), "op.ok")(&err)

	if out := buf.String(); !strings.Contains(out, "req_id=- op=op.ok") || strings.Contains(out, "err=") {
		t.Fatalf("log = %q", out)
	}
}
