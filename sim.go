//go:build !tinygo

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
	"bufio"
	"fmt"
	"os"
	"time"

	"simon/game"
)

/*
 * CONSTANTS
 */
const (
	textIntro string = "SIMON SAYS -- repeat the pattern"
	textWin   string = "    YOU WIN!    "
	textLose  string = "    GAME OVER    "
)

/*
 * The console board
 *
 * A stand-in for the real hardware so the game can be played at a
 * desk: ENTER is the start button, the keys 1-4 are the slot
 * buttons, and the LED row is drawn to the terminal. A typed key
 * counts as one press-and-release: it reads pressed on its first
 * poll and released on the next, which is all the core's
 * wait-for-release loop needs.
 */
type consoleBoard struct {
	in        *bufio.Scanner
	led       [game.LED_COUNT]bool
	active    int // slot currently "held", -1 for none
	releasing int // slot owed a released poll, -1 for none
	bootAt    time.Time
}

func newConsoleBoard() *consoleBoard {

	return &consoleBoard{
		in:        bufio.NewScanner(os.Stdin),
		active:    -1,
		releasing: -1,
		bootAt:    time.Now(),
	}
}

func (b *consoleBoard) SetLED(slot int, on bool) {

	b.led[slot] = on
	b.drawLEDs()
}

func (b *consoleBoard) ButtonPressed(slot int) bool {

	// The poll straight after a press is the release check for
	// that slot; it must not prompt for the next key
	if b.releasing == slot {
		b.releasing = -1
		return false
	}

	// A scan starts at slot 0: that is when the next key is read
	if b.active < 0 && b.releasing < 0 && slot == 0 {
		b.active = b.readKey()
	}

	if slot == b.active {
		// Pressed this poll, released the next
		b.active = -1
		b.releasing = slot
		return true
	}

	return false
}

func (b *consoleBoard) StartPressed() bool {

	fmt.Print("\nPress ENTER to start ")
	b.readLine()
	return true
}

func (b *consoleBoard) PlayTone(freq uint, ms uint32) {

	// No speaker on a terminal: the tone is just its duration
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (b *consoleBoard) Sleep(ms uint32) {

	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (b *consoleBoard) ShowLevel(level int) {

	fmt.Printf("\nLevel %d\n", level)
}

func (b *consoleBoard) ShowOutcome(won bool) {

	if won {
		fmt.Println("\n" + textWin)
	} else {
		fmt.Println("\n" + textLose)
	}
}

func (b *consoleBoard) Ticks() uint32 {

	return uint32(time.Since(b.bootAt).Milliseconds())
}

/*
 * Console I/O
 */
func (b *consoleBoard) drawLEDs() {

	row := "\r  "
	for _, on := range b.led {
		if on {
			row += "[*] "
		} else {
			row += "[ ] "
		}
	}

	fmt.Print(row)
}

// readKey blocks for a line of input and maps the keys 1-4 to a
// slot. Anything else reads as no press.
func (b *consoleBoard) readKey() int {

	fmt.Print("\n  1-4 + ENTER> ")
	line := b.readLine()
	if len(line) == 1 && line[0] >= '1' && line[0] <= '4' {
		return int(line[0] - '1')
	}

	return -1
}

func (b *consoleBoard) readLine() string {

	if !b.in.Scan() {
		// Stdin closed: nothing left to play with
		fmt.Println()
		os.Exit(0)
	}

	return b.in.Text()
}

func main() {

	fmt.Println(textIntro)
	board := newConsoleBoard()
	game.New(board).Run()
}
