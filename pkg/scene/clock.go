package scene

import "time"

// Clock provides the time source for expressions that read elapsed time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
