package notes

import "github.com/m-mizutani/goerr/v2"

// Errors returned by Board operations. All of them are expected input
// conditions; the board is never modified when one is returned.
var (
	ErrEmptyText        = goerr.New("note text is empty")
	ErrDuplicateText    = goerr.New("note with the same text already exists")
	ErrCapacityExceeded = goerr.New("board has reached its note capacity")
	ErrNotFound         = goerr.New("note not found")
)
