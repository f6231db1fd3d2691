/*
	keylight reads and adjusts the keyboard backlight through the LED class
	device in /sys/class/leds.
*/

package main

import "github.com/hoppxi/keylight/internal/cmd"

func main() {
	cmd.Execute()
}
