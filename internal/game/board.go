package game

import (
	"errors"
	"fmt"
)

// BoardSize 棋盘边长（15×15 标准五子棋盘）
const BoardSize = 15

// CellState represents the occupant of a cell on the board.
// It can be Empty, a PlayerStone, an AiStone or the Player's Queen.
type CellState int8

const (
	Empty CellState = iota
	PlayerStone
	AiStone
	Queen
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "Empty"
	case PlayerStone:
		return "Player"
	case AiStone:
		return "Ai"
	case Queen:
		return "Queen"
	}
	return fmt.Sprintf("CellState(%d)", int8(c))
}

func (c CellState) valid() bool {
	return c >= Empty && c <= Queen
}

// Side 对局双方
type Side int8

const (
	Player Side = iota
	Ai
)

func (s Side) String() string {
	if s == Ai {
		return "Ai"
	}
	return "Player"
}

// Opponent 返回对手
func (s Side) Opponent() Side {
	if s == Player {
		return Ai
	}
	return Player
}

// Stone 返回该方的普通棋子
func (s Side) Stone() CellState {
	if s == Ai {
		return AiStone
	}
	return PlayerStone
}

// Owns 判断格子是否属于 s；Queen 归玩家所有
func (s Side) Owns(c CellState) bool {
	if s == Player {
		return c == PlayerStone || c == Queen
	}
	return c == AiStone
}

// Coord 零基 (row, col) 坐标
type Coord struct {
	Row, Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Board 15×15 棋盘，维护增量 Zobrist 哈希
type Board struct {
	cells [BoardSize][BoardSize]CellState
	hash  uint64
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InBounds returns true if (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < BoardSize && col < BoardSize
}

// Get returns the occupant at (row, col). Out of bounds reads as Empty, so
// callers that care about edges must check InBounds first.
func (b *Board) Get(row, col int) CellState {
	if !InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

// Set updates the occupant at (row, col). Returns an error if out of bounds.
func (b *Board) Set(row, col int, v CellState) error {
	if !InBounds(row, col) {
		return fmt.Errorf("set %v: %w", Coord{row, col}, ErrOutOfBounds)
	}
	b.set(row, col, v)
	return nil
}

// set 写格子并同步哈希；非法取值属于编程错误
func (b *Board) set(row, col int, v CellState) {
	if !v.valid() {
		panic(fmt.Sprintf("game: invalid cell value %d at %v", v, Coord{row, col}))
	}
	prev := b.cells[row][col]
	if prev == v {
		return
	}
	b.hash ^= zobristKey(row, col, prev) ^ zobristKey(row, col, v)
	b.cells[row][col] = v
}

// owned 越界安全地判断 (row,col) 是否属于 side
func (b *Board) owned(row, col int, side Side) bool {
	return InBounds(row, col) && side.Owns(b.cells[row][col])
}

// emptyAt 越界返回 false
func (b *Board) emptyAt(row, col int) bool {
	return InBounds(row, col) && b.cells[row][col] == Empty
}

// Hash 返回当前局面的 Zobrist 哈希
func (b *Board) Hash() uint64 { return b.hash }

// IsEmpty reports whether no cell is occupied.
func (b *Board) IsEmpty() bool {
	return b.Count(Empty) == BoardSize*BoardSize
}

// Count 统计某种格子数量
func (b *Board) Count(v CellState) int {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.cells[r][c] == v {
				n++
			}
		}
	}
	return n
}

// FindQueen 返回皇后位置
func (b *Board) FindQueen() (Coord, bool) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.cells[r][c] == Queen {
				return Coord{r, c}, true
			}
		}
	}
	return Coord{}, false
}

// Cells 返回棋盘的值拷贝，供外部渲染/轮询
func (b *Board) Cells() [BoardSize][BoardSize]CellState {
	return b.cells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
