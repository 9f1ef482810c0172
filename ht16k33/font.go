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

/*
 * Glyphs
 *
 * 8 bytes per glyph, one byte per matrix column, bit y = row y.
 * Digits are the usual 5x7 font columns, centred.
 */
var DIGITS = [6][8]byte{
	{0x00, 0x3E, 0x51, 0x49, 0x45, 0x3E, 0x00, 0x00}, // 0
	{0x00, 0x00, 0x42, 0x7F, 0x40, 0x00, 0x00, 0x00}, // 1
	{0x00, 0x42, 0x61, 0x51, 0x49, 0x46, 0x00, 0x00}, // 2
	{0x00, 0x21, 0x41, 0x45, 0x4B, 0x31, 0x00, 0x00}, // 3
	{0x00, 0x18, 0x14, 0x12, 0x7F, 0x10, 0x00, 0x00}, // 4
	{0x00, 0x27, 0x45, 0x45, 0x45, 0x39, 0x00, 0x00}, // 5
}

// Win and lose faces
var SMILE = [8]byte{0x3C, 0x42, 0x95, 0xA1, 0xA1, 0x95, 0x42, 0x3C}
var FROWN = [8]byte{0x3C, 0x42, 0xA5, 0x91, 0x91, 0xA5, 0x42, 0x3C}
