// internal/game/tt.go
package game

import (
	"math/rand"
)

// ------------------------------------------------------------
//  Zobrist 随机键（预生成 + 零锁查询）
// ------------------------------------------------------------

var (
	zobristCell [BoardSize * BoardSize][4]uint64 // 下标 → 4 个状态随机数
	zobristSide [2]uint64                        // 评估视角：Player / Ai
)

func init() {
	// 固定种子，哈希在不同进程间可复现
	r := rand.New(rand.NewSource(0x5EED_F1FE))
	for i := range zobristCell {
		zobristCell[i] = [4]uint64{
			0,          // Empty 不参与
			r.Uint64(), // PlayerStone
			r.Uint64(), // AiStone
			r.Uint64(), // Queen
		}
	}
	zobristSide[0] = r.Uint64()
	zobristSide[1] = r.Uint64()
}

func zobristKey(row, col int, s CellState) uint64 {
	return zobristCell[row*BoardSize+col][s]
}

// hashBoard 计算整盘哈希（全盘 XOR），用于校验增量哈希
func hashBoard(b *Board) uint64 {
	var h uint64
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if s := b.cells[r][c]; s != Empty {
				h ^= zobristKey(r, c, s)
			}
		}
	}
	return h
}

// ------------------------------------------------------------
//  评估缓存：EvaluateSide 只依赖局面，按 (hash, side) 记忆化
// ------------------------------------------------------------

const evalCacheSize = 1 << 16
const evalCacheMask = evalCacheSize - 1

type evalEntry struct {
	key   uint64
	used  bool
	score float64
}

type evalCache struct {
	table   []evalEntry
	lookups uint64
	hits    uint64
}

func newEvalCache() *evalCache {
	return &evalCache{table: make([]evalEntry, evalCacheSize)}
}

// evaluate 命中则直接返回，否则计算并覆盖槽位
func (ec *evalCache) evaluate(b *Board, side Side) float64 {
	if ec == nil {
		return EvaluateSide(b, side)
	}
	key := b.hash ^ zobristSide[side]
	e := &ec.table[key&evalCacheMask]
	ec.lookups++
	if e.used && e.key == key {
		ec.hits++
		return e.score
	}
	score := EvaluateSide(b, side)
	*e = evalEntry{key: key, used: true, score: score}
	return score
}

// stats 返回 查询次数、命中次数与命中率(%)
func (ec *evalCache) stats() (lookups, hits uint64, hitRate float64) {
	lookups, hits = ec.lookups, ec.hits
	if lookups > 0 {
		hitRate = float64(hits) / float64(lookups) * 100
	}
	return
}
