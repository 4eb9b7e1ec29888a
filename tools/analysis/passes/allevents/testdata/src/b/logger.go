package b

import (
	"fmt"

	"b/event"
)

type Logger struct{}

var _ event.Logger = Logger{}

func (Logger) LogEvent(ev event.Event) {
	if _, ok := ev.(*event.Defined); ok {
		fmt.Println(ev)
	}
}
