package game

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrMandatoryCapture = errors.New("mandatory capture violation")
	ErrInvalidReference = errors.New("invalid piece reference")
	ErrInvalidSquare    = errors.New("invalid square")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrNoSelection      = errors.New("no piece selected")
	ErrNotChaining      = errors.New("no capture chain in progress")
	ErrGameOver         = errors.New("game is over")
	ErrChainPending     = errors.New("capture chain awaiting decision")
)
