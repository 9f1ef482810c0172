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
package ht16k33

import (
	"machine"
)

// HT16K33 LED Matrix Commands
const (
	HT16K33_GENERIC_DISPLAY_ON      uint8 = 0x81
	HT16K33_GENERIC_DISPLAY_OFF     uint8 = 0x80
	HT16K33_GENERIC_SYSTEM_ON       uint8 = 0x21
	HT16K33_GENERIC_SYSTEM_OFF      uint8 = 0x20
	HT16K33_GENERIC_DISPLAY_ADDRESS uint8 = 0x00
	HT16K33_GENERIC_CMD_BRIGHTNESS  uint8 = 0xE0
	HT16K33_GENERIC_CMD_BLINK       uint8 = 0x81
	HT16K33_ADDRESS                 uint8 = 0x70
)

type HT16K33 struct {
	// Host I2C bus
	bus machine.I2C
	// Internal data: brightness level, buffer
	address    uint8
	brightness uint
	buffer     []byte
}

func New(bus machine.I2C) HT16K33 {

	return HT16K33{bus: bus, address: HT16K33_ADDRESS, brightness: 15, buffer: make([]byte, 8)}
}

func (p *HT16K33) Init() {

	p.Power(true)
	p.SetBrightness(2)
	p.Clear()
	p.Draw()
}

func (p *HT16K33) Power(isOn bool) {

	if isOn {
		p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_ON)
		p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_ON)
	} else {
		p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_OFF)
		p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_OFF)
	}
}

func (p *HT16K33) SetBrightness(brightness uint) {

	if brightness > 15 {
		brightness = 15
	}

	p.brightness = brightness
	p.i2cWriteByte(HT16K33_GENERIC_CMD_BRIGHTNESS | byte(brightness&0xFF))
}

func (p *HT16K33) ShowGlyph(glyph []byte) {

	// Write the glyph across the matrix
	// NOTE Assumes the glyph is 8 columns wide
	copy(p.buffer, glyph)

	// Send the buffer to the LED matrix
	p.Draw()
}

func (p *HT16K33) Plot(x uint, y uint, isSet bool) {

	// Set or unset the specified pixel
	col := p.buffer[x]

	if isSet {
		col |= (1 << y)
	} else {
		col &= ^(1 << y)
	}

	p.buffer[x] = col
}

func (p *HT16K33) Clear() {

	// Clear the display buffer
	for i := 0; i < 8; i++ {
		p.buffer[i] = 0x00
	}
}

func (p *HT16K33) Draw() {

	// Set up the buffer holding the data to be
	// transmitted to the LED
	output_buffer := [17]byte{}

	// Span the 8 bytes of the graphics buffer
	// across the 16 bytes of the LED's buffer
	for i := 0; i < 8; i++ {
		a := p.buffer[i]
		output_buffer[i*2+1] = (a >> 1) + ((a << 7) & 0xFF)
	}

	// Write out the transmit buffer
	p.i2cWriteBlock(output_buffer[:])
}

func (p *HT16K33) i2cWriteByte(value byte) {

	// Convenience function to write a single byte to the matrix
	data := [1]byte{value}
	p.bus.Tx(uint16(HT16K33_ADDRESS), data[:], nil)
}

func (p *HT16K33) i2cWriteBlock(data []byte) {

	// Convenience function to write a 'count' bytes to the matrix
	p.bus.Tx(uint16(HT16K33_ADDRESS), data, nil)
}
