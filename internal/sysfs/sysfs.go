package sysfs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
)

const (
	// DefaultClassRoot is where the kernel exposes LED class devices.
	DefaultClassRoot = "/sys/class/leds"
	// DefaultDevice is the MacBook (Pro) keyboard backlight.
	DefaultDevice = "smc::kbd_backlight"
)

// Device is a single LED class device directory holding the
// max_brightness and brightness attributes.
type Device struct {
	Root string
	Name string
}

// NewDevice returns the device name under root, falling back to the
// package defaults for empty values.
func NewDevice(root, name string) Device {
	if root == "" {
		root = DefaultClassRoot
	}
	if name == "" {
		name = DefaultDevice
	}
	return Device{Root: root, Name: name}
}

func (d Device) dir() string {
	return filepath.Join(d.Root, d.Name)
}

func (d Device) MaxBrightnessPath() string {
	return filepath.Join(d.dir(), "max_brightness")
}

func (d Device) BrightnessPath() string {
	return filepath.Join(d.dir(), "brightness")
}

func (d Device) MaxBrightness() (int, error) {
	return ReadValue(d.MaxBrightnessPath())
}

func (d Device) Brightness() (int, error) {
	return ReadValue(d.BrightnessPath())
}

func (d Device) SetBrightness(v int) error {
	return WriteValue(d.BrightnessPath(), v)
}

func (d Device) String() string {
	return d.dir()
}

// ReadValue reads the first line of path and converts it the way C atoi
// does: garbage yields 0 instead of an error. Only failing to open or read
// the file is reported.
func ReadValue(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("could not open the file %s: %w", path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("could not read the file %s: %w", path, err)
	}

	return atoi(line), nil
}

// WriteValue truncates path and writes v as a newline-terminated decimal.
func WriteValue(path string, v int) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("could not open the file %s: %w", path, err)
	}

	_, werr := f.WriteString(strconv.Itoa(v) + "\n")
	cerr := f.Close()
	if werr != nil && cerr != nil {
		return fmt.Errorf("could not write the file %s: %w", path, errors.Join(werr, cerr))
	}
	if werr != nil {
		return fmt.Errorf("could not write the file %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("could not write the file %s: %w", path, cerr)
	}
	return nil
}

// IsPermission reports whether err was caused by missing write access to
// a control file.
func IsPermission(err error) bool {
	return errors.Is(err, os.ErrPermission) || errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM)
}

func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}

	n, err := strconv.ParseInt(s[start:i], 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
