package game

import "math/rand"

// Director plays the maze in place of the keyboard.
type Director interface {
	/**
	 * Prepare to play, once the maze has been carved and the player placed
	 */
	Start(navigator *Navigator, buffer Buffer, rng *rand.Rand)

	/**
	 * Choose the direction to face for the next step
	 */
	Act() Direction

	/**
	 * Stop playing
	 */
	End()
}
