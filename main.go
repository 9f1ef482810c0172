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

func main() {

	// Set up the hardware or fail
	board, ok := setup()
	if !ok {
		failLoop()
	}

	// Play the game
	game.New(board).Run()
}

/*
 *  Initialisation Functions
 */
func setup() (*picoBoard, bool) {

	// Set up the slot LEDs, off to start
	for _, pin := range ledPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}

	// Set up the slot buttons and the Start button.
	// Pull-ups: the pins read low while pressed
	for _, pin := range buttonPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	PIN_START.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	// Set up the speaker
	PIN_SPEAKER.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_SPEAKER.Low()

	// Set up the level display
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{SCL: PIN_SCL, SDA: PIN_SDA})
	if err != nil {
		// Couldn't configure I2C
		return nil, false
	}

	board := &picoBoard{
		buzz:   buzzer.New(PIN_SPEAKER),
		matrix: ht16k33.New(*i2c),
		bootAt: time.Now(),
	}

	board.matrix.Init()
	return board, true
}

func failLoop() {

	// Signal hardware failure on the Pico LED.
	// There is no recovery from here
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * 100)
		led.High()
		time.Sleep(time.Millisecond * 100)
	}
}
