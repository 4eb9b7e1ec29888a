package event

// A cut-down event package with a fixed list of events to test against.

type (
	Logger   interface{ LogEvent(Event) }
	Event    interface{ event() }
	Defined  struct{}
	Building struct{}
	Built    struct{}
	Compiled struct{}
)

func (*Defined) event()  {}
func (*Building) event() {}
func (*Built) event()    {}
func (*Compiled) event() {}

// NopLogger is not an event type.
var NopLogger Logger
