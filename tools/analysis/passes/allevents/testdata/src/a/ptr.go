package a

import (
	"log"

	"github.com/sappy-go/di/event"
)

type ptrLogger struct{}

func (*ptrLogger) LogEvent(ev event.Event) { // want `\*ptrLogger doesn't handle \[\*Building \*Defined\]`
	if e, ok := ev.(*event.Built); ok {
		log.Print(e)
	}
	if e, ok := ev.(*event.Compiled); ok {
		log.Print(e)
	}
}
