package events

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotOwner      = errors.New("event belongs to another organizer")
	ErrNotEditable   = errors.New("event can no longer be edited")
)
