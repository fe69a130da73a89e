package repositories

import "errors"

// ErrInsufficientPoints is returned by UserRepository.DebitPoints when the
// user's balance does not cover the requested cost. The balance is left
// untouched in that case.
var ErrInsufficientPoints = errors.New("insufficient points")
