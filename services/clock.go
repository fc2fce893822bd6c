package services

import (
	"time"

	"github.com/msherazsadiq/Healthify/core"
)

// Clock supplies "now" to the services so tests can pin it.
type Clock interface {
	Today() string // "yyyy-mm-dd"
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Today() string  { return time.Now().Format(core.DateLayout) }
func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
