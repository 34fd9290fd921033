package events

// ListenerType selects which element events a listener receives.
type ListenerType int

const (
	ListenClick ListenerType = iota
	ListenScroll
	ListenMouseMove
	ListenHover
	ListenDrop
	ListenKey
	ListenText
	ListenSelect
)

func (t ListenerType) String() string {
	switch t {
	case ListenClick:
		return "click"
	case ListenScroll:
		return "scroll"
	case ListenMouseMove:
		return "move"
	case ListenHover:
		return "hover"
	case ListenDrop:
		return "drop"
	case ListenKey:
		return "key"
	case ListenText:
		return "text"
	case ListenSelect:
		return "select"
	default:
		return "unknown"
	}
}

// ParseListenerType maps a name produced by String back to its type.
func ParseListenerType(s string) (ListenerType, bool) {
	for t := ListenClick; t <= ListenSelect; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Kind governs how a listener interacts with the shared consumption state of
// one dispatch.
type Kind int

const (
	// Listen fires while the event is free and then consumes it.
	Listen Kind = iota
	// Peek fires while the event is free and leaves it free.
	Peek
	// Force always fires and never changes the state.
	Force
)

func (k Kind) String() string {
	switch k {
	case Peek:
		return "peek"
	case Force:
		return "force"
	default:
		return "listen"
	}
}

// ParseKind maps a name produced by String back to its kind.
func ParseKind(s string) (Kind, bool) {
	for k := Listen; k <= Force; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Listener is one registration on an element. Message is handed back with
// every event the listener produces.
type Listener struct {
	Type    ListenerType
	Kind    Kind
	Message any
}

// State is the consumption flag shared by every listener during one dispatch.
type State struct {
	consumed bool
}

// Free reports whether no Listen listener has fired yet.
func (s *State) Free() bool {
	return !s.consumed
}

// Offer asks whether a listener of kind k may fire and updates the state if
// it does.
func (s *State) Offer(k Kind) bool {
	switch k {
	case Force:
		return true
	case Peek:
		return !s.consumed
	default:
		if s.consumed {
			return false
		}
		s.consumed = true
		return true
	}
}
