package a

import "github.com/sappy-go/di/event"

type nopLogger struct{}

func (nopLogger) LogEvent(event.Event) {}
