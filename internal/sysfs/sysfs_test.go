package sysfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestAtoi(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"42\n", 42},
		{"  7", 7},
		{"-3\n", -3},
		{"+9", 9},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"99999999999999999999", 0},
	}
	for _, tc := range cases {
		if got := atoi(tc.in); got != tc.want {
			t.Errorf("atoi(%q)=%d want %d", tc.in, got, tc.want)
		}
	}
}

func TestReadValue_FirstLineOnly(t *testing.T) {
	p := filepath.Join(t.TempDir(), "brightness")
	writeFile(t, p, "3\n99\n")

	v, err := ReadValue(p)
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	if v != 3 {
		t.Fatalf("v=%d want 3", v)
	}
}

func TestReadValue_NoTrailingNewline(t *testing.T) {
	p := filepath.Join(t.TempDir(), "brightness")
	writeFile(t, p, "255")

	v, err := ReadValue(p)
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	if v != 255 {
		t.Fatalf("v=%d want 255", v)
	}
}

func TestReadValue_GarbageIsZero(t *testing.T) {
	p := filepath.Join(t.TempDir(), "brightness")
	writeFile(t, p, "not a number\n")

	v, err := ReadValue(p)
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	if v != 0 {
		t.Fatalf("v=%d want 0", v)
	}
}

func TestReadValue_Missing(t *testing.T) {
	_, err := ReadValue(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v want not-exist", err)
	}
}

func TestWriteValue_Truncates(t *testing.T) {
	p := filepath.Join(t.TempDir(), "brightness")
	writeFile(t, p, "12345\n")

	if err := WriteValue(p, 7); err != nil {
		t.Fatalf("WriteValue: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != "7\n" {
		t.Fatalf("content=%q want %q", b, "7\n")
	}
}

func TestWriteValue_MissingFileNotCreated(t *testing.T) {
	p := filepath.Join(t.TempDir(), "brightness")
	if err := WriteValue(p, 1); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("file was created: %v", err)
	}
}

func TestWriteValue_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	p := filepath.Join(t.TempDir(), "brightness")
	writeFile(t, p, "4\n")
	if err := os.Chmod(p, 0o444); err != nil {
		t.Fatalf("Chmod: %v", err)
	}

	err := WriteValue(p, 9)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsPermission(err) {
		t.Fatalf("IsPermission(%v)=false", err)
	}
	b, _ := os.ReadFile(p)
	if string(b) != "4\n" {
		t.Fatalf("content=%q want unchanged", b)
	}
}

func TestWriteValue_Directory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "brightness")
	if err := os.Mkdir(p, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := WriteValue(p, 3); err == nil {
		t.Fatalf("expected error writing to a directory")
	}
}

func TestDevice_String(t *testing.T) {
	if got, want := NewDevice("/x", "kbd").String(), "/x/kbd"; got != want {
		t.Fatalf("String()=%q want %q", got, want)
	}
}

func TestDevice_Paths(t *testing.T) {
	d := NewDevice("", "")
	if got, want := d.MaxBrightnessPath(), "/sys/class/leds/smc::kbd_backlight/max_brightness"; got != want {
		t.Fatalf("MaxBrightnessPath=%q want %q", got, want)
	}
	if got, want := d.BrightnessPath(), "/sys/class/leds/smc::kbd_backlight/brightness"; got != want {
		t.Fatalf("BrightnessPath=%q want %q", got, want)
	}
}

func TestDevice_RoundTrip(t *testing.T) {
	root := t.TempDir()
	d := NewDevice(root, "tpacpi::kbd_backlight")
	writeFile(t, d.MaxBrightnessPath(), "2\n")
	writeFile(t, d.BrightnessPath(), "0\n")

	max, err := d.MaxBrightness()
	if err != nil || max != 2 {
		t.Fatalf("MaxBrightness=%d,%v want 2,nil", max, err)
	}
	if err := d.SetBrightness(1); err != nil {
		t.Fatalf("SetBrightness: %v", err)
	}
	cur, err := d.Brightness()
	if err != nil || cur != 1 {
		t.Fatalf("Brightness=%d,%v want 1,nil", cur, err)
	}
}
