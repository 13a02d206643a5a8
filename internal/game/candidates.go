package game

// candidateRadius 候选点到已有棋子的最大切比雪夫距离
const candidateRadius = 2

// CandidateMoves 返回所有距离任一棋子（双方皆可）不超过 2 的空格，按行优先排列。
// 空棋盘只返回天元。
func CandidateMoves(b *Board) []Coord {
	var out []Coord
	occupied := false
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.cells[r][c] != Empty {
				occupied = true
				continue
			}
			if nearStone(b, r, c) {
				out = append(out, Coord{r, c})
			}
		}
	}
	if !occupied {
		return []Coord{{BoardSize / 2, BoardSize / 2}}
	}
	return out
}

func nearStone(b *Board, row, col int) bool {
	for dr := -candidateRadius; dr <= candidateRadius; dr++ {
		for dc := -candidateRadius; dc <= candidateRadius; dc++ {
			r, c := row+dr, col+dc
			if InBounds(r, c) && b.cells[r][c] != Empty {
				return true
			}
		}
	}
	return false
}
