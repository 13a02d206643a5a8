package game

import "errors"

// Status 面向 UI 的提示语（固定枚举）
type Status int

const (
	StatusPlayerTurn Status = iota
	StatusAiThinking
	StatusPlayerWins
	StatusAiWins
	StatusDraw
	StatusGameOver
	StatusNotYourTurn
	StatusOutOfBounds
	StatusOccupied
	StatusSkillsDisabled
	StatusSkillUnavailable
	StatusSkillCancelled
	StatusRelocatePickSource
	StatusRelocatePickDest
	StatusRelocateBadSource
	StatusRelocateBadDest
	StatusRelocated
	StatusRemovePickTarget
	StatusRemoveBadTarget
	StatusRemoved
	StatusAreaPickCenter
	StatusAreaEmpty
	StatusAreaCleared
	StatusBoardCleared
	StatusColorsFlipped
	StatusSummonReady
	StatusQueenSelected
	StatusQueenReleased
	StatusIllegalQueenPath
	StatusRewound
)

var statusText = map[Status]string{
	StatusPlayerTurn:         "Player's turn",
	StatusAiThinking:         "Ai thinking...",
	StatusPlayerWins:         "Player wins!",
	StatusAiWins:             "Ai wins!",
	StatusDraw:               "Draw!",
	StatusGameOver:           "Game over - press restart",
	StatusNotYourTurn:        "Not your turn",
	StatusOutOfBounds:        "Out of board",
	StatusOccupied:           "Cell is occupied",
	StatusSkillsDisabled:     "Skills are disabled in classic mode",
	StatusSkillUnavailable:   "Skill unavailable",
	StatusSkillCancelled:     "Skill cancelled",
	StatusRelocatePickSource: "Relocate: pick one of your stones",
	StatusRelocatePickDest:   "Relocate: pick an adjacent empty cell",
	StatusRelocateBadSource:  "Invalid source - must be your own stone",
	StatusRelocateBadDest:    "Invalid target - must be empty and adjacent",
	StatusRelocated:          "Stone relocated - keep playing",
	StatusRemovePickTarget:   "Remove: pick an Ai stone",
	StatusRemoveBadTarget:    "Invalid target - must be an Ai stone",
	StatusRemoved:            "Ai stone removed - keep playing",
	StatusAreaPickCenter:     "Area clear: pick the center of a 3x3 area",
	StatusAreaEmpty:          "Invalid target - no stones in that area",
	StatusAreaCleared:        "Area cleared - keep playing",
	StatusBoardCleared:       "Board cleared - keep playing",
	StatusColorsFlipped:      "Colors flipped - keep playing",
	StatusSummonReady:        "Your next stone will be a Queen",
	StatusQueenSelected:      "Queen selected: pick a destination",
	StatusQueenReleased:      "Queen released",
	StatusIllegalQueenPath:   "Illegal queen path",
	StatusRewound:            "Time rewound two turns",
}

// String 返回人类可读的提示语
func (s Status) String() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return "Unknown status"
}

var (
	ErrGameOver         = errors.New("game is over")
	ErrNotYourTurn      = errors.New("not the player's turn")
	ErrAiThinking       = errors.New("ai move pending")
	ErrOccupied         = errors.New("cell is occupied")
	ErrSkillsDisabled   = errors.New("skills disabled in classic variant")
	ErrSkillUnavailable = errors.New("skill unavailable")
	ErrBadSource        = errors.New("relocate source must be a player stone")
	ErrBadDestination   = errors.New("relocate destination must be empty and adjacent")
	ErrInvalidTarget    = errors.New("invalid skill target")
	ErrNothingToClear   = errors.New("no stones to clear")
	ErrIllegalQueenPath = errors.New("illegal queen path")
)

// statusFor 把内部错误映射为提示语
func statusFor(err error) Status {
	switch {
	case errors.Is(err, ErrGameOver):
		return StatusGameOver
	case errors.Is(err, ErrAiThinking):
		return StatusAiThinking
	case errors.Is(err, ErrNotYourTurn):
		return StatusNotYourTurn
	case errors.Is(err, ErrOutOfBounds):
		return StatusOutOfBounds
	case errors.Is(err, ErrOccupied):
		return StatusOccupied
	case errors.Is(err, ErrSkillsDisabled):
		return StatusSkillsDisabled
	case errors.Is(err, ErrSkillUnavailable):
		return StatusSkillUnavailable
	case errors.Is(err, ErrBadSource):
		return StatusRelocateBadSource
	case errors.Is(err, ErrBadDestination):
		return StatusRelocateBadDest
	case errors.Is(err, ErrInvalidTarget):
		return StatusRemoveBadTarget
	case errors.Is(err, ErrNothingToClear):
		return StatusAreaEmpty
	case errors.Is(err, ErrIllegalQueenPath):
		return StatusIllegalQueenPath
	}
	panic("game: unmapped error: " + err.Error())
}
