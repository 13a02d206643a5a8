package game

// Direction 单位步进 (dRow, dCol)
type Direction struct {
	DR, DC int
}

// Axes 四个轴向：水平、竖直、主对角、副对角
var Axes = [4]Direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// WinLength 连五
const WinLength = 5

// Chain 一条同方连续棋子
type Chain struct {
	Length   int
	OpenEnds int
	Cells    []Coord
}

// countDirection 从 (row,col) 的下一格开始沿 d 数同方连续子数（不含起点）
func countDirection(b *Board, row, col int, side Side, d Direction) int {
	n := 0
	r, c := row+d.DR, col+d.DC
	for b.owned(r, c, side) {
		n++
		r += d.DR
		c += d.DC
	}
	return n
}

// LineThrough 返回经过 (row,col) 的最长同方连续段，按 d 的方向从后端到前端排列。
// (row,col) 本身不属于 side 时返回 nil。
func LineThrough(b *Board, row, col int, side Side, d Direction) []Coord {
	if !b.owned(row, col, side) {
		return nil
	}
	back := countDirection(b, row, col, side, Direction{-d.DR, -d.DC})
	fwd := countDirection(b, row, col, side, d)
	cells := make([]Coord, 0, back+fwd+1)
	r, c := row-back*d.DR, col-back*d.DC
	for i := 0; i <= back+fwd; i++ {
		cells = append(cells, Coord{r, c})
		r += d.DR
		c += d.DC
	}
	return cells
}

// ChainThrough 沿 d 取经过 (row,col) 的完整链（向前向后都走到头，而不是只从该格向前），
// 并分别检查链两端外侧的一格是否为空。从链上任意一格调用结果都相同。
func ChainThrough(b *Board, row, col int, side Side, d Direction) Chain {
	cells := LineThrough(b, row, col, side, d)
	if len(cells) == 0 {
		return Chain{}
	}
	first, last := cells[0], cells[len(cells)-1]
	open := 0
	if b.emptyAt(last.Row+d.DR, last.Col+d.DC) {
		open++
	}
	if b.emptyAt(first.Row-d.DR, first.Col-d.DC) {
		open++
	}
	return Chain{Length: len(cells), OpenEnds: open, Cells: cells}
}

// IsWinningMove 任一轴向上前后连续子数之和（含落子本身）≥5 即成五
func IsWinningMove(b *Board, row, col int, side Side) bool {
	if !b.owned(row, col, side) {
		return false
	}
	for _, d := range Axes {
		count := 1 +
			countDirection(b, row, col, side, d) +
			countDirection(b, row, col, side, Direction{-d.DR, -d.DC})
		if count >= WinLength {
			return true
		}
	}
	return false
}

// FiveSegmentThrough 从连续段 cells 中截出包含 (row,col) 的 5 格窗口：
// 起点为落子下标 −2，并夹在段内。段长不足 5 或不含该格时返回 nil。
func FiveSegmentThrough(cells []Coord, row, col int) []Coord {
	if len(cells) < WinLength {
		return nil
	}
	idx := -1
	for i, c := range cells {
		if c.Row == row && c.Col == col {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	start := idx - 2
	if start < 0 {
		start = 0
	}
	if start > len(cells)-WinLength {
		start = len(cells) - WinLength
	}
	return cells[start : start+WinLength]
}
