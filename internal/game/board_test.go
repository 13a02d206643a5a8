package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSetOutOfBounds(t *testing.T) {
	b := NewBoard()
	err := b.Set(BoardSize, 0, PlayerStone)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("期望越界错误，实际 %v", err)
	}
	if !b.IsEmpty() {
		t.Errorf("越界写入不应改动棋盘")
	}
}

func TestInvalidCellValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("非法格子值应当 panic")
		}
	}()
	NewBoard().Set(0, 0, CellState(9))
}

// 增量哈希必须始终等于整盘重算
func TestIncrementalHashMatchesFullHash(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	b := NewBoard()
	for i := 0; i < 500; i++ {
		v := CellState(r.Intn(4))
		_ = b.Set(r.Intn(BoardSize), r.Intn(BoardSize), v)
		if b.Hash() != hashBoard(b) {
			t.Fatalf("第 %d 步后哈希不一致", i)
		}
	}
	nb := NewBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			_ = nb.Set(row, col, b.Get(row, col))
		}
	}
	if nb.Hash() != b.Hash() {
		t.Errorf("相同局面哈希应相同")
	}
}

func TestSideOwnership(t *testing.T) {
	if !Player.Owns(Queen) || !Player.Owns(PlayerStone) || Player.Owns(AiStone) {
		t.Errorf("玩家应拥有普通棋子与皇后")
	}
	if Ai.Owns(Queen) || !Ai.Owns(AiStone) {
		t.Errorf("AI 只拥有 AI 棋子")
	}
	if Player.Opponent() != Ai || Ai.Opponent() != Player {
		t.Errorf("Opponent 错误")
	}
}
