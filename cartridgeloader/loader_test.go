package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vectrexcore/vectrexcore/cartridgeloader"
)

func writeTempImage(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write temp image: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempImage(t, []byte{0xde, 0xad, 0xbe, 0xef})

	cl := cartridgeloader.NewLoader(path)
	if err := cl.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cl.Data) != 4 {
		t.Fatalf("expected 4 bytes loaded, got %d", len(cl.Data))
	}
	if cl.Hash == "" {
		t.Fatalf("expected a hash to be computed")
	}
}

func TestLoadRejectsHashMismatch(t *testing.T) {
	path := writeTempImage(t, []byte{0x01, 0x02})

	cl := cartridgeloader.NewLoader(path)
	cl.Hash = "0000000000000000000000000000000000000000"
	if err := cl.Load(); err == nil {
		t.Fatalf("expected hash mismatch error")
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	path := writeTempImage(t, []byte{0x7f})

	cl := cartridgeloader.NewLoader(path)
	if err := cl.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := cl.Hash
	if err := cl.Load(); err != nil {
		t.Fatalf("unexpected error on second load: %v", err)
	}
	if cl.Hash != first {
		t.Fatalf("expected hash to remain stable across repeated loads")
	}
}

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader("/roms/minestorm.bin")
	if got := cl.ShortName(); got != "minestorm" {
		t.Fatalf("expected %q, got %q", "minestorm", got)
	}
}
