package a

import (
	"fmt"

	"github.com/sappy-go/di/event"
)

// Returns an error, so it is not an event.Logger.
type notALogger struct{}

func (*notALogger) LogEvent(ev event.Event) error {
	_, ok := ev.(*event.Defined)
	fmt.Println(ok)
	return nil
}
