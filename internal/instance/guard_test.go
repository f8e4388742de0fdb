package instance_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"traynote/internal/instance"
)

func TestAcquireStampsPid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traynote.lock")
	guard := instance.New(path, nil)
	defer guard.Release()

	ok, err := guard.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !ok {
		t.Fatal("expected lock acquisition to succeed")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read lock file: %v", err)
	}
	if string(data) != strconv.Itoa(os.Getpid()) {
		t.Fatalf("expected pid stamp, got %q", data)
	}
}

func TestAcquireIsIdempotentWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traynote.lock")
	guard := instance.New(path, nil)
	defer guard.Release()

	if ok, err := guard.Acquire(); err != nil || !ok {
		t.Fatalf("first Acquire: ok=%v err=%v", ok, err)
	}
	if ok, err := guard.Acquire(); err != nil || !ok {
		t.Fatalf("second Acquire: ok=%v err=%v", ok, err)
	}
}

func TestSecondGuardIsRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traynote.lock")
	first := instance.New(path, nil)
	defer first.Release()

	if ok, err := first.Acquire(); err != nil || !ok {
		t.Fatalf("first Acquire: ok=%v err=%v", ok, err)
	}

	second := instance.New(path, nil)
	ok, err := second.Acquire()
	if err != nil {
		t.Fatalf("second Acquire: %v", err)
	}
	if ok {
		t.Fatal("expected second guard to be refused while lock is held")
	}
}

func TestReleaseRemovesFileAndIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traynote.lock")
	guard := instance.New(path, nil)

	if ok, err := guard.Acquire(); err != nil || !ok {
		t.Fatalf("Acquire: ok=%v err=%v", ok, err)
	}

	guard.Release()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected lock file removed, stat err=%v", err)
	}
	guard.Release() // second call is a no-op

	// The lock is free again for a fresh guard.
	again := instance.New(path, nil)
	defer again.Release()
	if ok, err := again.Acquire(); err != nil || !ok {
		t.Fatalf("re-Acquire after Release: ok=%v err=%v", ok, err)
	}
}
