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
 * The peripheral boundary
 */
// Board is the hardware the game plays on: four LEDs, four buttons,
// a start button, a speaker and a millisecond clock. The game core
// drives a Board and nothing else, so a fake one can stand in for
// the real thing under test, and a console one on the desktop.
//
// Buttons report true while held. The electrical convention (the
// real buttons are active-low behind pull-ups) is the Board's
// business, not the game's.
type Board interface {
	// SetLED drives one slot's LED on or off
	SetLED(slot int, on bool)

	// ButtonPressed polls one slot's button
	ButtonPressed(slot int) bool

	// StartPressed polls the dedicated start button
	StartPressed() bool

	// PlayTone sounds the speaker at freq Hz, blocking for ms.
	// It doubles as a delay: callers rely on it taking ms to return
	PlayTone(freq uint, ms uint32)

	// Sleep blocks for ms. No return, no interruption
	Sleep(ms uint32)

	// ShowLevel presents the current round length (1-based) on
	// whatever auxiliary display the board has, if any
	ShowLevel(level int)

	// ShowOutcome presents the end of a session, win or loss
	ShowOutcome(won bool)

	// Ticks is a free-running millisecond counter, used only to
	// seed the random sequence
	Ticks() uint32
}
