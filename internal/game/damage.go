package game

// CellChange 记录一次格子改写：坐标、改写前的值、改写后的值
type CellChange struct {
	At   Coord
	Prev CellState
	Next CellState
}

// Damage 一次连线结算的结果
type Damage struct {
	Dealt   int
	Removed []CellChange
}

// ApplyLineDamage 对 (row,col) 所在的四个轴向分别结算：
// 连续段 ≥5 的轴记 1 点伤害，并把该段中以落子为中心的 5 格窗口标记为移除。
// 多轴窗口取并集后统一移除；玩家落子时己方皇后不会被移除。
func ApplyLineDamage(b *Board, row, col int, side Side) Damage {
	var dmg Damage
	marked := make(map[Coord]struct{})
	var order []Coord
	for _, d := range Axes {
		window := FiveSegmentThrough(LineThrough(b, row, col, side, d), row, col)
		if window == nil {
			continue
		}
		dmg.Dealt++
		for _, c := range window {
			if _, ok := marked[c]; ok {
				continue
			}
			marked[c] = struct{}{}
			order = append(order, c)
		}
	}
	for _, c := range order {
		prev := b.cells[c.Row][c.Col]
		if side == Player && prev == Queen {
			continue
		}
		b.set(c.Row, c.Col, Empty)
		dmg.Removed = append(dmg.Removed, CellChange{At: c, Prev: prev, Next: Empty})
	}
	return dmg
}

// restoreCells 按逆序把改写过的格子恢复成 Prev
func restoreCells(b *Board, changes []CellChange) {
	for i := len(changes) - 1; i >= 0; i-- {
		ch := changes[i]
		if b.cells[ch.At.Row][ch.At.Col] != ch.Next {
			panic("game: board diverged from effect record at " + ch.At.String())
		}
		b.set(ch.At.Row, ch.At.Col, ch.Prev)
	}
}
