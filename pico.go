//go:build tinygo

/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/buzzer"

	"simon/game"
	"simon/ht16k33"
)

/*
 * CONSTANTS
 */
const (
	// GPIO pins
	PIN_SDA     machine.Pin = machine.GP12
	PIN_SCL     machine.Pin = machine.GP13
	PIN_START   machine.Pin = machine.GP10
	PIN_SPEAKER machine.Pin = machine.GP16
)

// Mapping logical slots (0-3) to physical pins.
// Static, set once here, never touched at runtime
var ledPins = [game.LED_COUNT]machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5}
var buttonPins = [game.BUTTON_COUNT]machine.Pin{machine.GP6, machine.GP7, machine.GP8, machine.GP9}

/*
 * The Pico board
 */
// picoBoard binds the game to the Pico: discrete LEDs and buttons on
// GPIO, a piezo speaker, and an HT16K33 matrix for the level readout.
// Buttons sit behind pull-ups, so pressed reads electrically low.
type picoBoard struct {
	buzz   buzzer.Device
	matrix ht16k33.HT16K33
	bootAt time.Time
}

func (b *picoBoard) SetLED(slot int, on bool) {

	if on {
		ledPins[slot].High()
	} else {
		ledPins[slot].Low()
	}
}

func (b *picoBoard) ButtonPressed(slot int) bool {

	// Active-low: pressed pulls the pin to ground
	return !buttonPins[slot].Get()
}

func (b *picoBoard) StartPressed() bool {

	return !PIN_START.Get()
}

func (b *picoBoard) PlayTone(freq uint, ms uint32) {

	// Square wave on the speaker pin for ms milliseconds.
	// NOTE The buzzer driver's own Tone() meters duration in beats
	//      against a BPM, so the half-period loop stays local
	period := time.Duration(500000/freq) * time.Microsecond
	start := time.Now()

	for time.Since(start).Milliseconds() < int64(ms) {
		b.buzz.On()
		time.Sleep(period)
		b.buzz.Off()
		time.Sleep(period)
	}
}

func (b *picoBoard) Sleep(ms uint32) {

	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (b *picoBoard) ShowLevel(level int) {

	if level < 1 || level >= len(ht16k33.DIGITS) {
		return
	}

	b.matrix.ShowGlyph(ht16k33.DIGITS[level][:])
}

func (b *picoBoard) ShowOutcome(won bool) {

	if won {
		b.matrix.ShowGlyph(ht16k33.SMILE[:])
	} else {
		b.matrix.ShowGlyph(ht16k33.FROWN[:])
	}
}

func (b *picoBoard) Ticks() uint32 {

	return uint32(time.Since(b.bootAt).Milliseconds())
}
