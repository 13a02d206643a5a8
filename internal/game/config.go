package game

import (
	"fmt"
	"strings"
)

// Variant 规则变体
type Variant int

const (
	Skill   Variant = iota // 技能五子棋：连五造成伤害，血量归零判负
	Classic                // 经典五子棋：连五即胜
)

func (v Variant) String() string {
	if v == Classic {
		return "classic"
	}
	return "skill"
}

// Config 对局配置
type Config struct {
	Variant     Variant
	Difficulty  Difficulty
	MaxHP       int
	SearchDepth int
	Seed        int64 // 0 = 按时间播种
}

// DefaultConfig 默认：技能模式、困难 AI、3 点血、2 层搜索
func DefaultConfig() Config {
	return Config{
		Variant:     Skill,
		Difficulty:  Hard,
		MaxHP:       3,
		SearchDepth: 2,
	}
}

func (c Config) normalized() Config {
	if c.MaxHP < 1 {
		c.MaxHP = 1
	}
	if c.SearchDepth < 1 {
		c.SearchDepth = 1
	}
	return c
}

// ParseDifficulty 解析 easy/medium/hard
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "random":
		return Easy, nil
	case "medium", "greedy":
		return Medium, nil
	case "hard", "minimax":
		return Hard, nil
	}
	return Hard, fmt.Errorf("unknown difficulty %q", s)
}

// ParseVariant 解析 skill/classic
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skill", "power":
		return Skill, nil
	case "classic", "base":
		return Classic, nil
	}
	return Skill, fmt.Errorf("unknown variant %q", s)
}
