package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestZerologLogger_WritesMessageAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf)
	ctx := context.Background()

	log.Info(ctx, "starting", "addr", ":8080")
	log.Warn(ctx, "slow", "ms", 120)
	log.Error(ctx, "failed", "op", "add-game")

	out := buf.String()
	for _, s := range []string{"starting", "addr", ":8080", "slow", "failed", "add-game"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestZerologLogger_With_AddsPersistentFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf).With("module", "http_server")

	log.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), "http_server") {
		t.Fatalf("expected module field in output, got:\n%s", buf.String())
	}
}
