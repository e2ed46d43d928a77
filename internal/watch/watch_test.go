package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	fw, err := New()
	if err != nil {
		t.Skip("fsnotify not supported: ", err)
	}
	defer fw.Close()

	dir := t.TempDir()
	if err := fw.Add(dir); err != nil {
		t.Fatal(err)
	}

	go func() {
		f := filepath.Join(dir, "expr.txt")
		_ = os.WriteFile(f, []byte("2 + 3"), 0o644)
	}()

	select {
	case ev := <-fw.Events():
		if ev.Path == "" {
			t.Fatal("empty path")
		}
		if !ev.Has(OpCreate | OpWrite) {
			t.Fatalf("expected create or write, got op %b", ev.Op)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for fsnotify event")
	}
}
