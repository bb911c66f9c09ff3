package backend

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, ok, err := f.Read(ctx, "app.json"); err != nil || ok {
		t.Fatalf("read before write: ok=%v err=%v", ok, err)
	}

	want := []byte(`{"n":42}`)
	if err := f.Write(ctx, "app.json", want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, ok, err := f.Read(ctx, "app.json")
	if err != nil || !ok {
		t.Fatalf("read: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("read back %q, want %q", got, want)
	}
}

func TestFilePermissions(t *testing.T) {
	dir := t.TempDir()
	f, _ := NewFile(dir)
	ctx := context.Background()

	if err := f.Write(ctx, "secret.bin", []byte("s3cr3t")); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(filepath.Join(dir, "secret.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("file mode = %o, want 600", perm)
	}
}

func TestFileNestedName(t *testing.T) {
	f, _ := NewFile(t.TempDir())
	ctx := context.Background()

	if err := f.Write(ctx, filepath.Join("app", "cache", "state"), []byte("x")); err != nil {
		t.Fatalf("nested write: %v", err)
	}
	_, ok, err := f.Read(ctx, filepath.Join("app", "cache", "state"))
	if err != nil || !ok {
		t.Fatalf("nested read: ok=%v err=%v", ok, err)
	}
}

func TestFileDelete(t *testing.T) {
	f, _ := NewFile(t.TempDir())
	ctx := context.Background()

	if err := f.Delete(ctx, "absent"); err != nil {
		t.Fatalf("delete of a missing name should be a no-op: %v", err)
	}

	if err := f.Write(ctx, "gone", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := f.Delete(ctx, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := f.Read(ctx, "gone"); ok {
		t.Fatal("name still readable after delete")
	}
}
