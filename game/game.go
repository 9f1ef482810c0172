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

import (
	prand "math/rand"
)

/*
 * CONSTANTS
 */
const (
	// Number of rounds to survive for a win
	MAX_LEVEL int = 5

	// One button per LED
	BUTTON_COUNT int = 4
	LED_COUNT    int = 4

	// Game timing (ms)
	GAME_SPEED_MS    uint32 = 500
	ERROR_BLINK_MS   uint32 = 200
	WIN_ANIMATION_MS uint32 = 100
)

// State is the current stage of the game.
type State uint8

const (
	IDLE        State = iota // Waiting for the start button
	SIMON_SAYS               // Demonstrate the sequence to the player
	PLAYER_SAYS              // Player repeats the sequence
	GAME_OVER                // End of the game: loss
	WIN                      // End of the game: victory
)

/*
 * The state machine
 */
// Game holds one session's mutable state: the growing slot sequence,
// the player's progress through it, and the sequence generator.
// Exactly one Game exists, constructed at startup and run forever.
type Game struct {
	board    Board
	rng      *prand.Rand
	sequence [MAX_LEVEL]int
	level    int
	state    State
}

func New(board Board) *Game {

	return &Game{board: board, state: IDLE}
}

// Run plays the game forever.
func (g *Game) Run() {

	for {
		g.Step()
	}
}

// Step performs the current state's action and moves to the next
// state. Splitting the loop body out keeps the machine drivable
// one state at a time.
func (g *Game) Step() {

	switch g.state {
	case IDLE:
		g.idle()
	case SIMON_SAYS:
		g.simonSays()
	case PLAYER_SAYS:
		g.playerSays()
	case GAME_OVER:
		g.gameOverFlash()
		g.state = IDLE
	case WIN:
		g.winningLight()
		g.state = IDLE
	}
}

func (g *Game) State() State {

	return g.state
}

func (g *Game) Level() int {

	return g.level
}

/*
 * State actions
 */
func (g *Game) idle() {

	// Poll the start button once per step. On a press, a fresh
	// session begins: the tick counter seeds the generator, so each
	// game gets its own sequence but a given seed always replays
	// the same one
	if g.board.StartPressed() {
		g.rng = prand.New(prand.NewSource(int64(g.board.Ticks())))
		g.level = 0
		g.startChirp()
		g.state = SIMON_SAYS
	}
}

func (g *Game) simonSays() {

	// Each round adds one random slot to the sequence.
	// Repeats are allowed
	g.sequence[g.level] = g.rng.Intn(BUTTON_COUNT)
	g.board.ShowLevel(g.level + 1)

	// Play the whole sequence so far back to the player:
	// each slot's LED and tone for a beat, then dark for a beat.
	// Playback is atomic -- nothing can interrupt it
	for i := 0; i <= g.level; i++ {
		slot := g.sequence[i]
		g.board.SetLED(slot, true)
		g.board.PlayTone(slotTones[slot], GAME_SPEED_MS)
		g.board.SetLED(slot, false)
		g.board.Sleep(GAME_SPEED_MS)
	}

	g.state = PLAYER_SAYS
}

func (g *Game) playerSays() {

	// The player must now echo sequence[0..level], one press at
	// a time. Each press is acknowledged with its LED and tone
	// whether it is right or wrong; a wrong one ends the game on
	// the spot and the remaining positions are never asked for
	for i := 0; i <= g.level; i++ {
		index := g.waitForButton()
		g.board.SetLED(index, true)
		g.board.PlayTone(slotTones[index], GAME_SPEED_MS)

		// Wait for the button to be released
		for g.board.ButtonPressed(index) {
		}

		g.board.SetLED(index, false)
		g.board.Sleep(GAME_SPEED_MS)

		if index != g.sequence[i] {
			g.state = GAME_OVER
			return
		}
	}

	// Survived the round: either that was the last one, or the
	// sequence grows by one and Simon speaks again
	if g.level == MAX_LEVEL-1 {
		g.state = WIN
	} else {
		g.level += 1
		g.state = SIMON_SAYS
	}
}

/*
 * Input
 */
// pressedButton scans the buttons in slot order and reports the
// first one held, or -1 for none. Simultaneous presses therefore
// resolve to the lowest slot, every time.
func (g *Game) pressedButton() int {

	for i := 0; i < BUTTON_COUNT; i++ {
		if g.board.ButtonPressed(i) {
			return i
		}
	}

	return -1
}

// waitForButton blocks until some button is pressed.
func (g *Game) waitForButton() int {

	for {
		if index := g.pressedButton(); index >= 0 {
			return index
		}
	}
}

/*
 * Feedback routines
 */
func (g *Game) startChirp() {

	// Two quick rising notes to call the game on
	g.board.PlayTone(TONE_START_LOW, 100)
	g.board.PlayTone(TONE_START_HIGH, 100)
}

func (g *Game) gameOverFlash() {

	// Flash all four LEDs together, four half-periods, with a
	// low buzz while they are lit
	g.board.ShowOutcome(false)

	on := false
	for i := 0; i < 4; i++ {
		on = !on
		for slot := 0; slot < LED_COUNT; slot++ {
			g.board.SetLED(slot, on)
		}

		if on {
			g.board.PlayTone(TONE_GAME_OVER, ERROR_BLINK_MS)
		} else {
			g.board.Sleep(ERROR_BLINK_MS)
		}
	}
}

func (g *Game) winningLight() {

	// Running light: sweep the four LEDs four times, each step
	// pitched a little higher than its slot tone
	g.board.ShowOutcome(true)

	for j := 0; j < 4; j++ {
		for i := 0; i < LED_COUNT; i++ {
			g.board.SetLED(i, true)
			g.board.PlayTone(slotTones[i]*2, WIN_ANIMATION_MS)
			g.board.SetLED(i, false)
		}
	}
}
