package event

type partialLogger struct{}

func (partialLogger) LogEvent(ev Event) { // want `partialLogger doesn't handle \[\*Compiled\]`
	switch ev.(type) {
	case *Defined:
	case *Building:
	case *Built:
	}
}
