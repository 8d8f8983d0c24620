package apperror

import "errors"

var (
	ErrGameOver         = errors.New("game is already over")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoTilesRemaining = errors.New("no tiles of that rank remaining")
	ErrTargetTooStrong  = errors.New("target tile is of equal or greater rank")

	ErrNothingToUndo = errors.New("nothing to undo")
	ErrInvalidDepth  = errors.New("search depth must be between 1 and 10")

	ErrInvalidCell = errors.New("invalid cell reference")
	ErrInvalidRank = errors.New("invalid rank letter")
)
