package availability

import "errors"

var ErrInternal = errors.New("service: internal error")
