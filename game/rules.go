package game

// Rules fixes the orientation of the board for both colors.
type Rules interface {
	// Forward is the row direction a man of color advances in.
	Forward(color Color) int
	// PromotionRow is the farthest row for color, where men are crowned.
	PromotionRow(color Color) int
	FirstPlayer() Color
	// HomeRows are the rows a color's pieces occupy at setup.
	HomeRows(color Color) []int
}

type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) Forward(color Color) int {
	if color == Dark {
		return -1
	}
	return 1
}

func (sr *StandardRules) PromotionRow(color Color) int {
	if color == Dark {
		return 0
	}
	return Size - 1
}

func (sr *StandardRules) FirstPlayer() Color {
	return Dark
}

func (sr *StandardRules) HomeRows(color Color) []int {
	if color == Dark {
		return []int{5, 6, 7}
	}
	return []int{0, 1, 2}
}

// RulesText is the rules summary shown to players.
const RulesText = `01. Dark moves first, then the players alternate turns.
02. Pieces move one square diagonally onto an empty playable square.
03. A piece captures by jumping over an adjacent enemy piece onto the empty square behind it.
04. Captures are mandatory: if any of your pieces can capture, you must capture.
05. After a capture, the same piece may keep capturing while further captures are available.
06. A piece reaching the farthest row becomes a king.
07. Once crowned, the turn ends, even if additional captures are possible.
08. Kings move forwards and backwards; other pieces only move forwards.
09. Regicide: a piece that captures a king becomes a king, and the turn ends.
10. A player with no pieces left loses.
11. A player unable to make a valid move loses.`
