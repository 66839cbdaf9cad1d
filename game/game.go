package game

import "fmt"

// Phase is the state of the turn controller.
type Phase int

const (
	AwaitingSelection Phase = iota
	PieceSelected
	AwaitingChainDecision
	// TurnComplete is transient: the controller flips the active color and
	// returns to AwaitingSelection in the same call.
	TurnComplete
)

func (p Phase) String() string {
	switch p {
	case AwaitingSelection:
		return "awaiting-selection"
	case PieceSelected:
		return "piece-selected"
	case AwaitingChainDecision:
		return "awaiting-chain-decision"
	case TurnComplete:
		return "turn-complete"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type Status int

const (
	Applied Status = iota
	Promoted
	ChainAvailable
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Promoted:
		return "promoted"
	case ChainAvailable:
		return "chain-available"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result reports an applied step.
type Result struct {
	Status     Status
	Move       Move
	Captured   *Piece
	Regicide   bool
	Chain      []Square // capture destinations when Status is ChainAvailable
	Transition Phase    // TurnComplete or AwaitingChainDecision
}

// Game is the turn controller for one game. It is not safe for concurrent
// use; gamemaster.Session serializes access for interactive play.
type Game struct {
	board     *Board
	turn      Color
	turnCount int
	phase     Phase
	selected  PieceID
	history   []Move
}

type Option func(g *Game)

// WithRules starts from the standard setup under custom rules.
func WithRules(rules Rules) Option {
	return func(g *Game) {
		g.board = NewBoard(rules)
		g.turn = rules.FirstPlayer()
	}
}

// WithBoard starts from an arbitrary position.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		if b != nil {
			g.board = b
		}
	}
}

func WithTurn(color Color) Option {
	return func(g *Game) {
		g.turn = color
	}
}

// NewGame starts a game from the standard position with Dark to move.
func NewGame(options ...Option) *Game {
	rules := NewStandardRules()
	g := &Game{ // Default values
		board: NewBoard(rules),
		turn:  rules.FirstPlayer(),
		phase: AwaitingSelection,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Turn() Color {
	return g.turn
}

// TurnCount is the number of completed turns.
func (g *Game) TurnCount() int {
	return g.turnCount
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Selected returns the selected piece, or the chaining piece during a chain.
func (g *Game) Selected() (PieceID, bool) {
	return g.selected, g.selected != 0
}

// History lists every step applied so far.
func (g *Game) History() []Move {
	return append([]Move(nil), g.history...)
}

func (g *Game) Outcome() *Outcome {
	return Terminal(g.board, g.turn)
}

// ownPiece checks that id refers to a live piece of the active color.
func (g *Game) ownPiece(id PieceID) (Piece, error) {
	p, ok := g.board.Piece(id)
	if !ok {
		return Piece{}, fmt.Errorf("%w: piece %d", ErrInvalidReference, id)
	}
	if p.Color != g.turn {
		if g.turnCount == 0 && g.turn == g.board.rules.FirstPlayer() {
			return Piece{}, fmt.Errorf("%w: %s moves first", ErrNotYourTurn, g.turn)
		}
		return Piece{}, fmt.Errorf("%w: it is %s's turn", ErrNotYourTurn, g.turn)
	}
	return p, nil
}

func (g *Game) checkOpen() error {
	if outcome := g.Outcome(); outcome != nil {
		return fmt.Errorf("%w: %s", ErrGameOver, outcome)
	}
	if g.phase == AwaitingChainDecision {
		return ErrChainPending
	}
	return nil
}

// Select picks a piece of the active color and returns its legal
// destinations.
func (g *Game) Select(id PieceID) ([]Square, error) {
	if err := g.checkOpen(); err != nil {
		return nil, err
	}
	if _, err := g.ownPiece(id); err != nil {
		return nil, err
	}
	g.selected = id
	g.phase = PieceSelected
	return g.LegalDestinations(id), nil
}

// Deselect drops the current selection outside of a capture chain.
func (g *Game) Deselect() {
	if g.phase == PieceSelected {
		g.selected = 0
		g.phase = AwaitingSelection
	}
}

// LegalDestinations returns the destinations id may move to this turn, after
// the player-wide mandatory capture rule. During a capture chain only the
// chaining piece has destinations.
func (g *Game) LegalDestinations(id PieceID) []Square {
	p, ok := g.board.Piece(id)
	if !ok || p.Color != g.turn {
		return nil
	}
	if g.phase == AwaitingChainDecision {
		if id != g.selected {
			return nil
		}
		return g.board.CaptureDestinations(id)
	}
	moves, captures := g.board.Destinations(id)
	if len(captures) > 0 {
		return captures
	}
	if g.board.HasCapture(g.turn) {
		return nil
	}
	return moves
}

// ApplyMove validates and applies a move of the active color. Rejected moves
// leave the board untouched.
func (g *Game) ApplyMove(id PieceID, to Square) (Result, error) {
	if err := g.checkOpen(); err != nil {
		return Result{}, err
	}
	p, err := g.ownPiece(id)
	if err != nil {
		return Result{}, err
	}
	g.selected = id
	g.phase = PieceSelected

	moves, captures := g.board.Destinations(id)
	switch {
	case containsSquare(captures, to):
	case containsSquare(moves, to):
		if g.board.HasCapture(g.turn) {
			return Result{}, fmt.Errorf("%w: %s must capture this turn", ErrMandatoryCapture, g.turn)
		}
	default:
		return Result{}, fmt.Errorf("%w: piece %d cannot move from %s to %s", ErrInvalidMove, id, p.Square, to)
	}
	return g.advance(id, to), nil
}

// ContinueChain applies the next capture of the chaining piece.
func (g *Game) ContinueChain(id PieceID, to Square) (Result, error) {
	if g.phase != AwaitingChainDecision {
		return Result{}, ErrNotChaining
	}
	if id != g.selected {
		return Result{}, fmt.Errorf("%w: piece %d is not the capturing piece", ErrInvalidMove, id)
	}
	if !containsSquare(g.board.CaptureDestinations(id), to) {
		return Result{}, fmt.Errorf("%w: piece %d cannot capture to %s", ErrInvalidMove, id, to)
	}
	return g.advance(id, to), nil
}

// EndChain stops a capture chain and completes the turn.
func (g *Game) EndChain() error {
	if g.phase != AwaitingChainDecision {
		return ErrNotChaining
	}
	g.completeTurn()
	return nil
}

func (g *Game) advance(id PieceID, to Square) Result {
	out := g.board.step(id, to)
	g.history = append(g.history, out.Move)

	res := Result{
		Status:   Applied,
		Move:     out.Move,
		Captured: out.Captured,
		Regicide: out.Regicide,
	}
	if out.Promoted {
		res.Status = Promoted
	}

	if !out.EndsTurn() && out.Move.IsCapture() {
		if chain := g.board.CaptureDestinations(id); len(chain) > 0 {
			g.phase = AwaitingChainDecision
			g.selected = id
			res.Status = ChainAvailable
			res.Chain = chain
			res.Transition = AwaitingChainDecision
			return res
		}
	}

	g.completeTurn()
	res.Transition = TurnComplete
	return res
}

func (g *Game) completeTurn() {
	g.turn = g.turn.Opponent()
	g.turnCount++
	g.selected = 0
	g.phase = AwaitingSelection
}
