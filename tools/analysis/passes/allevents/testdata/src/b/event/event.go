package event

// Same shape as the real event package, different import path.

type (
	Logger  interface{ LogEvent(Event) }
	Event   interface{ event() }
	Defined struct{}
	Built   struct{}
)

func (*Defined) event() {}
func (*Built) event()   {}
