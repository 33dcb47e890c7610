package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/ckit/pkg/io/xmmap"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCmdStat(t *testing.T) {
	path := writeTempFile(t, "data.bin", []byte("hello world"))

	var buf bytes.Buffer
	err := cmdStat(context.Background(), 4, path, &buf)
	if err != nil {
		t.Fatalf("cmdStat failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "11 字节") {
		t.Errorf("missing size in output: %q", out)
	}
	if !strings.Contains(out, "页数:     3") {
		t.Errorf("expected 3 pages for 11 bytes / page size 4: %q", out)
	}
}

func TestCmdStat_MissingFile(t *testing.T) {
	err := cmdStat(context.Background(), xmmap.DefaultPageSize, "/nonexistent/data.bin", &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// 文件不可读是运行时错误，不应是 usageError
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		t.Errorf("should not be usageError: %v", err)
	}
}

func TestCmdDump(t *testing.T) {
	content := []byte("0123456789abcdef")
	path := writeTempFile(t, "data.bin", content)

	tests := []struct {
		name   string
		offset int64
		length int64
		want   string
	}{
		{"whole file", 0, -1, "0123456789abcdef"},
		{"from offset", 10, -1, "abcdef"},
		{"offset and length", 4, 4, "4567"},
		{"length past end clamps", 12, 100, "cdef"},
		{"at end yields nothing", 16, -1, ""},
		{"zero length", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := cmdDump(context.Background(), 4, path, tt.offset, tt.length, &buf)
			if err != nil {
				t.Fatalf("cmdDump failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCmdDump_InvalidArgs(t *testing.T) {
	path := writeTempFile(t, "data.bin", []byte("abc"))

	tests := []struct {
		name     string
		pageSize int
		offset   int64
	}{
		{"negative offset", 4, -1},
		{"offset beyond size", 4, 100},
		{"invalid page size", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cmdDump(context.Background(), tt.pageSize, path, tt.offset, -1, &bytes.Buffer{})
			var usageErr *usageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("expected *usageError, got %T: %v", err, err)
			}
		})
	}
}

func TestCmdSum(t *testing.T) {
	content1 := []byte("hello world")
	content2 := []byte("another file entirely")
	path1 := writeTempFile(t, "a.bin", content1)
	path2 := writeTempFile(t, "b.bin", content2)

	var buf bytes.Buffer
	err := cmdSum(context.Background(), 4, []string{path1, path2}, &buf)
	if err != nil {
		t.Fatalf("cmdSum failed: %v", err)
	}

	want := fmt.Sprintf("%016x  %s\n%016x  %s\n",
		xxhash.Sum64(content1), path1,
		xxhash.Sum64(content2), path2)
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCmdSum_Cancelled(t *testing.T) {
	path := writeTempFile(t, "a.bin", []byte("data"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cmdSum(ctx, xmmap.DefaultPageSize, []string{path}, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestUsageError(t *testing.T) {
	err := &usageError{msg: "test error"}
	if err.Error() != "test error" {
		t.Errorf("usageError.Error() = %q, want %q", err.Error(), "test error")
	}

	var target *usageError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &target) {
		t.Error("errors.As failed for *usageError")
	}
}

func TestCreateApp(t *testing.T) {
	app := createApp()
	if app.Name != "mmcat" {
		t.Errorf("app name = %q", app.Name)
	}
	if len(app.Commands) != 3 {
		t.Errorf("expected 3 commands, got %d", len(app.Commands))
	}
}

func TestApp_StatEndToEnd(t *testing.T) {
	path := writeTempFile(t, "data.bin", []byte("hello"))

	app := createApp()
	var buf bytes.Buffer
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"mmcat", "stat", path})
	if err != nil {
		t.Fatalf("app.Run failed: %v", err)
	}
	if !strings.Contains(buf.String(), "5 字节") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
