package entity

// DrawPattern returns the cells mark holds in a full board that contains no run of
// WinCondition for either player. Columns are paired and each row shifts the pairing,
// which keeps every axis at runs of two or less. Each player gets half the board.
func DrawPattern(mark Mark) []Move {
	moves := make([]Move, 0, BoardSize*BoardSize/2)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cell := PlayerX
			if (col/2+row)%2 == 1 {
				cell = PlayerO
			}
			if cell == mark {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}
