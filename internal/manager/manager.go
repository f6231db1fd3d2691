package manager

import (
	"fmt"

	"github.com/hoppxi/keylight/internal/backlight"
	"github.com/hoppxi/keylight/internal/sysfs"
	"github.com/hoppxi/keylight/internal/upower"
)

// Backend is an opened backlight store plus whatever must be released
// once the run is over.
type Backend struct {
	backlight.Store
	close func() error
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// String names the underlying device for diagnostics.
func (b *Backend) String() string {
	if s, ok := b.Store.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", b.Store)
}

// Open returns the store the settings point at.
func Open(s Settings) (*Backend, error) {
	switch s.Backend {
	case BackendUPower:
		kbd, err := upower.Connect()
		if err != nil {
			return nil, err
		}
		return &Backend{Store: kbd, close: kbd.Close}, nil

	case BackendSysfs, "":
		return &Backend{Store: sysfs.NewDevice(s.ClassRoot, s.Device)}, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", s.Backend)
	}
}
