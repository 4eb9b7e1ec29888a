package a

import (
	"fmt"
	"io"

	"github.com/sappy-go/di/event"
)

type valueLogger struct {
	W io.Writer
}

func (l valueLogger) LogEvent(ev event.Event) { // want `valueLogger doesn't handle \[\*Built \*Compiled\]`
	switch ev.(type) {
	case *event.Defined:
		fmt.Fprintln(l.W, ev)
	case *event.Building:
		fmt.Fprintln(l.W, ev)
	}
}
