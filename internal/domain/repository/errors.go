package repository

import "errors"

// ErrNotFound is returned by every repository when the target row is absent.
var ErrNotFound = errors.New("not found")

// Group order membership conflicts surfaced by TradeRepository.JoinGroupOrder.
var (
	ErrAlreadyJoined    = errors.New("already joined")
	ErrGroupOrderClosed = errors.New("group order closed")
)
