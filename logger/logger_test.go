package logger_test

import (
	"strings"
	"testing"

	"github.com/vectrexcore/vectrexcore/logger"
)

func TestLogDeduplicatesRepeats(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "via", "CA2 edge")
	logger.Log(logger.Allow, "via", "CA2 edge")
	logger.Log(logger.Allow, "via", "CA2 edge")

	var sb strings.Builder
	logger.Write(&sb)

	if got := sb.String(); !strings.Contains(got, "repeat x3") {
		t.Fatalf("expected repeat count in log output, got %q", got)
	}
}

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "psg", "mode inactive")
	logger.Log(logger.Allow, "psg", "mode write")

	var sb strings.Builder
	logger.Tail(&sb, 1)

	if got := sb.String(); !strings.Contains(got, "mode write") {
		t.Fatalf("expected tail to contain most recent entry, got %q", got)
	}
}
