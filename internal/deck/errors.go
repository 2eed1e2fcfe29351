package deck

import "errors"

var (
	ErrCardNotFound  = errors.New("deck: card not found")
	ErrDuplicateCard = errors.New("deck: card already exists")
	ErrEmptyFront    = errors.New("deck: card front is empty")
)
