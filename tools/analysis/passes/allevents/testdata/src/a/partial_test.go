package a

import (
	"fmt"

	"github.com/sappy-go/di/event"
)

// Loggers in test files may be partial.
type partialLogger struct{}

func (partialLogger) LogEvent(ev event.Event) {
	_, ok := ev.(*event.Defined)
	fmt.Println(ok)
}
