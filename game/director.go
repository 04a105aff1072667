package game

// Director plays a game in place of a human
type Director interface {
	/**
	 * Initialize the director with the board it will play on
	 */
	Init(*Board)

	/**
	 * Choose the next cell to dig, or report that no moves are left
	 */
	Next() (Coord, bool)
}
