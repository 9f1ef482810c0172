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
package game

/*
 * Tone tables
 */
// Each slot has its own voice, the classic Simon chord:
// E3, C#3, A3, E2-ish, near enough on a piezo.
var slotTones = [BUTTON_COUNT]uint{330, 277, 440, 165}

const (
	TONE_START_LOW  uint = 262 // C4
	TONE_START_HIGH uint = 392 // G4
	TONE_GAME_OVER  uint = 98  // G2
)
