package a

import (
	"fmt"

	"github.com/sappy-go/di/event"
)

type fullLogger struct{}

func (*fullLogger) LogEvent(ev event.Event) {
	switch ev.(type) {
	case *event.Defined, *event.Building, *event.Built:
		fmt.Println(ev)
	case *event.Compiled:
		fmt.Println(ev)
	}
}
