// File /ui/render.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wangyudatang-glitch/Skill-WuZiQi/internal/game"
)

const stoneRadius = cellSize * 0.42

var (
	colBoard  = color.RGBA{0xdc, 0xb3, 0x5c, 0xff}
	colGrid   = color.RGBA{0x4a, 0x34, 0x12, 0xff}
	colPlayer = color.RGBA{0x1c, 0x1c, 0x1c, 0xff}
	colAi     = color.RGBA{0xf2, 0xf2, 0xee, 0xff}
	colQueen  = color.RGBA{0xd4, 0xaf, 0x37, 0xff}
	colSelect = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	colHint   = color.NRGBA{0x34, 0x98, 0xdb, 0xb0}
	colGhost  = color.NRGBA{0x1c, 0x1c, 0x1c, 0x60}
)

// 星位
var starPoints = [][2]int{{3, 3}, {3, 11}, {7, 7}, {11, 3}, {11, 11}}

// cellCenter 交叉点 (row,col) 的像素坐标
func cellCenter(row, col int) (float32, float32) {
	return boardOriginX + float32(col)*cellSize, boardOriginY + float32(row)*cellSize
}

// drawBoard 在 dst 上绘制棋盘、棋子和选中提示
func drawBoard(dst *ebiten.Image, snap *game.Snapshot, hover *game.Coord) {
	// 1) 底板
	const pad = cellSize/2 + 6
	span := float32((game.BoardSize - 1) * cellSize)
	vector.DrawFilledRect(dst, boardOriginX-pad, boardOriginY-pad, span+2*pad, span+2*pad, colBoard, false)

	// 2) 网格与星位
	for i := 0; i < game.BoardSize; i++ {
		x0, y0 := cellCenter(i, 0)
		x1, y1 := cellCenter(i, game.BoardSize-1)
		vector.StrokeLine(dst, x0, y0, x1, y1, 1, colGrid, false)
		x0, y0 = cellCenter(0, i)
		x1, y1 = cellCenter(game.BoardSize-1, i)
		vector.StrokeLine(dst, x0, y0, x1, y1, 1, colGrid, false)
	}
	for _, p := range starPoints {
		cx, cy := cellCenter(p[0], p[1])
		vector.DrawFilledCircle(dst, cx, cy, 3, colGrid, true)
	}

	// 3) 棋子
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			drawStone(dst, r, c, snap.Cells[r][c])
		}
	}

	// 4) 悬停预览（仅玩家回合、空格）
	if hover != nil && !snap.GameOver && !snap.AiPending &&
		snap.Cells[hover.Row][hover.Col] == game.Empty && !snap.QueenSelected {
		cx, cy := cellCenter(hover.Row, hover.Col)
		vector.DrawFilledCircle(dst, cx, cy, stoneRadius, colGhost, true)
	}

	// 5) 挪移：源格绿圈 + 四邻空格提示
	if src := snap.RelocateSource; src != nil {
		cx, cy := cellCenter(src.Row, src.Col)
		vector.StrokeCircle(dst, cx, cy, stoneRadius+3, 3, colSelect, true)
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r, c := src.Row+d[0], src.Col+d[1]
			if game.InBounds(r, c) && snap.Cells[r][c] == game.Empty {
				hx, hy := cellCenter(r, c)
				vector.DrawFilledCircle(dst, hx, hy, 5, colHint, true)
			}
		}
	}

	// 6) 皇后选中
	if snap.QueenSelected {
		for r := 0; r < game.BoardSize; r++ {
			for c := 0; c < game.BoardSize; c++ {
				if snap.Cells[r][c] == game.Queen {
					cx, cy := cellCenter(r, c)
					vector.StrokeCircle(dst, cx, cy, stoneRadius+3, 3, colSelect, true)
				}
			}
		}
	}
}

func drawStone(dst *ebiten.Image, row, col int, v game.CellState) {
	cx, cy := cellCenter(row, col)
	switch v {
	case game.PlayerStone:
		vector.DrawFilledCircle(dst, cx, cy, stoneRadius, colPlayer, true)
	case game.AiStone:
		vector.DrawFilledCircle(dst, cx, cy, stoneRadius, colAi, true)
		vector.StrokeCircle(dst, cx, cy, stoneRadius, 1, colGrid, true)
	case game.Queen:
		vector.DrawFilledCircle(dst, cx, cy, stoneRadius, colPlayer, true)
		vector.StrokeCircle(dst, cx, cy, stoneRadius-2, 2, colQueen, true)
		// basicfont 7x13：字形基线在底部
		text.Draw(dst, "Q", basicfont.Face7x13, int(cx)-3, int(cy)+5, colQueen)
	}
}
