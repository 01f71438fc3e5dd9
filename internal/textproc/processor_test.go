package textproc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/danmuck/labkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessWritesNumberedUppercaseOutput(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "hello\r\nworld\n")
	out := filepath.Join(dir, "out.txt")

	res, err := NewProcessor().Process(context.Background(), in, out)
	require.NoError(t, err)
	require.Equal(t, 2, res.Lines)
	require.NotEmpty(t, res.JobID)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "1: HELLO\n2: WORLD\n", string(raw))
}

func TestProcessEmptyFile(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	in := writeFile(t, dir, "empty.txt", "")
	out := filepath.Join(dir, "out.txt")

	res, err := NewProcessor().Process(context.Background(), in, out)
	require.NoError(t, err)
	require.Equal(t, 0, res.Lines)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Empty(t, raw)
}

func TestProcessErrors(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	binary := writeFile(t, dir, "blob.bin", string([]byte{0xff, 0xfe, 0x00, 0x81}))
	text := writeFile(t, dir, "ok.txt", "fine\n")

	cases := []struct {
		name string
		in   string
		out  string
		want error
	}{
		{name: "missing input", in: filepath.Join(dir, "nope.txt"), out: filepath.Join(dir, "o1"), want: ErrInputNotFound},
		{name: "directory input", in: dir, out: filepath.Join(dir, "o2"), want: ErrInputIsDir},
		{name: "binary input", in: binary, out: filepath.Join(dir, "o3"), want: ErrNotText},
		{name: "missing output dir", in: text, out: filepath.Join(dir, "no-such-dir", "o4"), want: ErrOutputUnwritable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProcessor().Process(context.Background(), tc.in, tc.out)
			require.True(t, errors.Is(err, tc.want), "got %v want %v", err, tc.want)
			_, statErr := os.Stat(tc.out)
			require.True(t, errors.Is(statErr, os.ErrNotExist), "failed job must not create output")
		})
	}
}

func TestProcessUnreadableInput(t *testing.T) {
	testlog.Start(t)
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	in := writeFile(t, dir, "secret.txt", "hidden\n")
	require.NoError(t, os.Chmod(in, 0o000))
	t.Cleanup(func() { _ = os.Chmod(in, 0o644) })

	_, err := NewProcessor().Process(context.Background(), in, filepath.Join(dir, "out.txt"))
	require.ErrorIs(t, err, ErrInputUnreadable)
}

func TestProcessHonorsCancelledContext(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "x\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProcessor().Process(ctx, in, filepath.Join(dir, "out.txt"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessKeepsExistingOutputMode(t *testing.T) {
	testlog.Start(t)
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits only")
	}
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "classified\n")
	out := writeFile(t, dir, "secret.txt", "old\n")
	require.NoError(t, os.Chmod(out, 0o600))

	_, err := NewProcessor().Process(context.Background(), in, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "1: CLASSIFIED\n", string(raw))
}

func TestProcessNewOutputFollowsUmask(t *testing.T) {
	testlog.Start(t)
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits only")
	}
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "x\n")

	ref := filepath.Join(dir, "ref.txt")
	f, err := os.OpenFile(ref, os.O_CREATE|os.O_WRONLY, 0o666)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	refInfo, err := os.Stat(ref)
	require.NoError(t, err)

	out := filepath.Join(dir, "fresh.txt")
	_, err = NewProcessor().Process(context.Background(), in, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Equal(t, refInfo.Mode().Perm(), info.Mode().Perm())
}
