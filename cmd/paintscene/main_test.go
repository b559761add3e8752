package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/imgpaint/painter"
	"github.com/imgpaint/painter/internal/imageio"
)

const sceneSrc = `
width = 64
height = 48

[camera]
fx = 50.0
fy = 50.0
cx = 32.0
cy = 24.0

[[points]]
position = [0.0, 0.0, 1.0]
color = "red"
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { painter.SetLogger(nil) })

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return buf.String(), err
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestInstallLogger(t *testing.T) {
	t.Cleanup(func() { painter.SetLogger(nil) })

	var buf bytes.Buffer
	installLogger(newLogger(&buf, log.DebugLevel))
	painter.Logger().Debug("through slog", "key", "value")
	if !strings.Contains(buf.String(), "through slog") {
		t.Errorf("painter log record not forwarded: %q", buf.String())
	}
	if !painter.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level not enabled on the installed logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(scene, []byte(sceneSrc), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render", scene)
	if err != nil {
		t.Fatalf("render error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Rendered scene") {
		t.Errorf("missing progress log in %q", out)
	}

	img, err := imageio.Load(filepath.Join(dir, "scene.png"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	rgb := painter.RGBImageFromImage(img)
	if got := rgb.Pixel(24, 32); got != painter.Red {
		t.Errorf("point pixel = %v, want red", got)
	}
}

func TestRenderCommandOutputFormat(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(scene, []byte(sceneSrc), 0o600); err != nil {
		t.Fatal(err)
	}

	bmpPath := filepath.Join(dir, "out.bmp")
	if _, err := execute(t, "render", scene, "-o", bmpPath); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if _, err := os.Stat(bmpPath); err != nil {
		t.Errorf("output not written: %v", err)
	}

	if _, err := execute(t, "render", scene, "-o", filepath.Join(dir, "out.gif")); err == nil {
		t.Error("render to .gif succeeded, want an unsupported format error")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "render", filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("render of a missing scene succeeded")
	}
	if _, err := execute(t, "render"); err == nil {
		t.Error("render without arguments succeeded")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("width = 4\nheight = 4\n[[shapes]]\nkind = \"star\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "render", bad); err == nil || !strings.Contains(err.Error(), "star") {
		t.Errorf("render of an invalid scene error = %v", err)
	}
}

func TestDemoCommand(t *testing.T) {
	dir := t.TempDir()
	if out, err := execute(t, "demo", "-o", dir); err != nil {
		t.Fatalf("demo error = %v\n%s", err, out)
	}

	want := map[string][2]int{
		"matrix.png":     {demoCols * demoScale, demoRows * demoScale},
		"primitives.png": {demoImageCols, demoImageRows},
		"camera.png":     {demoImageCols, demoImageRows},
	}
	for name, size := range want {
		img, err := imageio.Load(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("Load(%s) error = %v", name, err)
			continue
		}
		if b := img.Bounds(); b.Dx() != size[0] || b.Dy() != size[1] {
			t.Errorf("%s is %dx%d, want %dx%d", name, b.Dx(), b.Dy(), size[0], size[1])
		}
	}

	if _, err := execute(t, "demo", "-o", dir, "-f", "webp"); err == nil {
		t.Error("demo with an unsupported format succeeded")
	}
}

func TestMatrixDemo(t *testing.T) {
	img, err := matrixDemo()
	if err != nil {
		t.Fatalf("matrixDemo() error = %v", err)
	}
	// Painted over by the black rectangle.
	if got := img.Pixel(50, 50); got != 0 && got != 255 {
		t.Errorf("pixel (50, 50) = %d, want a line or the rectangle", got)
	}
	// The diagonal of the matrix is dark: |10 +- 1| of 15.
	if got := img.Pixel(demoRows*demoScale-2, demoRows*demoScale-2); got > 120 {
		t.Errorf("diagonal pixel = %d, want a dark level", got)
	}
}

func TestRotatedCov(t *testing.T) {
	cov := rotatedCov(0, 20, 70)
	if cov.At(0, 0) != 20 || cov.At(1, 1) != 70 || cov.At(0, 1) != 0 {
		t.Errorf("rotatedCov(0) = %v", cov)
	}
	quarter := rotatedCov(1.5707963267948966, 20, 70)
	if d := quarter.At(0, 0) - 70; d > 1e-9 || d < -1e-9 {
		t.Errorf("rotatedCov(pi/2)[0,0] = %v, want 70", quarter.At(0, 0))
	}
}

func TestCommandsStopWhenCancelled(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(scene, []byte(sceneSrc), 0o600); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		args []string
		out  string
	}{
		{"render", []string{"render", scene, "-o", filepath.Join(dir, "out.png")}, "out.png"},
		{"demo", []string{"demo", "-o", dir}, "camera.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeContext(t, ctx, tt.args...); !errors.Is(err, context.Canceled) {
				t.Fatalf("error = %v, want %v", err, context.Canceled)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.out)); !os.IsNotExist(err) {
				t.Errorf("%s was written after cancellation", tt.out)
			}
		})
	}
}

func TestRunExitCodes(t *testing.T) {
	t.Cleanup(func() { painter.SetLogger(nil) })
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(scene, []byte(sceneSrc), 0o600); err != nil {
		t.Fatal(err)
	}
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		args []string
		want int
	}{
		{"ok", context.Background(), []string{"render", scene}, 0},
		{"error", context.Background(), []string{"render", filepath.Join(dir, "missing.toml")}, 1},
		{"interrupted", cancelled, []string{"render", scene}, exitInterrupted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := run(tt.ctx, tt.args, &stderr); got != tt.want {
				t.Errorf("run(%v) = %d, want %d\n%s", tt.args, got, tt.want, stderr.String())
			}
		})
	}
}
