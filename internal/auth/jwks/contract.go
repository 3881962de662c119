package jwks

import (
	"context"
	"time"
)

// KeyProvider yields verification keys by kid
type KeyProvider interface {
	Key(ctx context.Context, kid string) (interface{}, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
