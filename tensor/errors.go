package tensor

import "errors"

var (
	ErrIndexOutOfRange = errors.New("tensor: index out of range")
	ErrBadShape        = errors.New("tensor: bad shape")
)
