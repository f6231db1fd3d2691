package manager

import (
	"fmt"
	"strings"

	"github.com/hoppxi/keylight/internal/sysfs"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendSysfs  = "sysfs"
	BackendUPower = "upower"
)

// Settings select which backlight keylight talks to. They come from
// KEYLIGHT_* environment variables and the --device flag, never from a file.
type Settings struct {
	ClassRoot string
	Device    string
	Backend   string
}

type ConfigManager struct{}

var Config = &ConfigManager{}

// Load resolves the settings. flags may be nil; when it carries a
// "device" flag that was set, it wins over KEYLIGHT_DEVICE.
func (c *ConfigManager) Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("keylight")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("class-root", sysfs.DefaultClassRoot)
	v.SetDefault("device", sysfs.DefaultDevice)
	v.SetDefault("backend", BackendSysfs)

	if flags != nil {
		if f := flags.Lookup("device"); f != nil {
			if err := v.BindPFlag("device", f); err != nil {
				return Settings{}, fmt.Errorf("failed to bind device flag: %w", err)
			}
		}
	}

	s := Settings{
		ClassRoot: v.GetString("class-root"),
		Device:    v.GetString("device"),
		Backend:   strings.ToLower(v.GetString("backend")),
	}

	switch s.Backend {
	case BackendSysfs, BackendUPower:
	default:
		return Settings{}, fmt.Errorf("unknown backend %q (want %s or %s)", s.Backend, BackendSysfs, BackendUPower)
	}
	if strings.ContainsRune(s.Device, '/') {
		return Settings{}, fmt.Errorf("invalid device name %q", s.Device)
	}

	return s, nil
}
