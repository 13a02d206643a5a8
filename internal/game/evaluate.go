// file: internal/game/evaluate.go
package game

// 评估权重（固定常量）
const (
	FiveScore = 100000.0

	// 盘面分 = 己方 − defenseWeight × 对方
	defenseWeight = 1.1
	// 贪心：己方 + denyWeight × 对方占该点的价值
	denyWeight = 0.8
)

// ScoreChain 按 (长度, 活端数) 查表
func ScoreChain(length, openEnds int) float64 {
	if length >= WinLength {
		return FiveScore
	}
	if openEnds == 0 {
		return 0
	}
	switch length {
	case 4:
		if openEnds == 2 {
			return 10000
		}
		return 4000
	case 3:
		if openEnds == 2 {
			return 1200
		}
		return 300
	case 2:
		if openEnds == 2 {
			return 200
		}
		return 80
	}
	return 10
}

// EvaluateSide 对 side 的所有链按方向各计一次分。
// 一条链只在它的起点（该方向上前一格不属于 side）被计分。
func EvaluateSide(b *Board, side Side) float64 {
	score := 0.0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if !side.Owns(b.cells[r][c]) {
				continue
			}
			for _, d := range Axes {
				if b.owned(r-d.DR, c-d.DC, side) {
					continue
				}
				ch := ChainThrough(b, r, c, side, d)
				score += ScoreChain(ch.Length, ch.OpenEnds)
			}
		}
	}
	return score
}

// Evaluate 站在 me 一方看盘面：己方 − 1.1 × 对方
func Evaluate(b *Board, me Side) float64 {
	return boardScore(EvaluateSide(b, me), EvaluateSide(b, me.Opponent()))
}

func boardScore(mine, theirs float64) float64 {
	return mine - defenseWeight*theirs
}
