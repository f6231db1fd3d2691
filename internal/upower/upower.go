// Package upower talks to the UPower daemon's keyboard backlight
// interface, which lets unprivileged users change the brightness.
package upower

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.UPower"
	objectPath = "/org/freedesktop/UPower/KbdBacklight"
	iface      = "org.freedesktop.UPower.KbdBacklight"
)

type caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

type KbdBacklight struct {
	conn *dbus.Conn
	obj  caller
}

// Connect opens a system bus connection to UPower. Close releases it.
func Connect() (*KbdBacklight, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}

	return &KbdBacklight{
		conn: conn,
		obj:  conn.Object(busName, dbus.ObjectPath(objectPath)),
	}, nil
}

func (k *KbdBacklight) MaxBrightness() (int, error) {
	return k.getInt("GetMaxBrightness")
}

func (k *KbdBacklight) Brightness() (int, error) {
	return k.getInt("GetBrightness")
}

func (k *KbdBacklight) SetBrightness(v int) error {
	if err := k.obj.Call(iface+".SetBrightness", 0, int32(v)).Err; err != nil {
		return fmt.Errorf("failed to set keyboard brightness to %d: %w", v, err)
	}
	return nil
}

func (k *KbdBacklight) Close() error {
	if k.conn == nil {
		return nil
	}
	return k.conn.Close()
}

func (k *KbdBacklight) String() string {
	return busName + objectPath
}

func (k *KbdBacklight) getInt(method string) (int, error) {
	var v int32
	if err := k.obj.Call(iface+"."+method, 0).Store(&v); err != nil {
		return 0, fmt.Errorf("upower %s: %w", method, err)
	}
	return int(v), nil
}
