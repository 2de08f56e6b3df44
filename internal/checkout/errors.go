package checkout

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrNotAuthenticated   = errors.New("no signed-in user, please log in to place an order")
	ErrProfileUnavailable = errors.New("could not fetch profile details")
	ErrSubmissionFailed   = errors.New("could not place the order")
)
