package events

import "testing"

func TestStateOffer(t *testing.T) {
	tests := []struct {
		name  string
		kinds []Kind
		fired []bool
	}{
		{"listen consumes", []Kind{Listen, Listen}, []bool{true, false}},
		{"peek leaves free", []Kind{Peek, Listen, Peek}, []bool{true, true, false}},
		{"force always fires", []Kind{Listen, Force, Peek, Force}, []bool{true, true, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			for i, k := range tt.kinds {
				if got := s.Offer(k); got != tt.fired[i] {
					t.Errorf("offer %d (%s) = %v, want %v", i, k, got, tt.fired[i])
				}
			}
		})
	}
}

func TestForceDoesNotConsume(t *testing.T) {
	var s State
	s.Offer(Force)
	if !s.Free() {
		t.Error("Force should leave the state free")
	}
}

func TestParseNames(t *testing.T) {
	for typ := ListenClick; typ <= ListenSelect; typ++ {
		got, ok := ParseListenerType(typ.String())
		if !ok || got != typ {
			t.Errorf("ParseListenerType(%q) = %v, %v", typ.String(), got, ok)
		}
	}
	for k := Listen; k <= Force; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("grab"); ok {
		t.Error("ParseKind should reject unknown names")
	}
}

func TestPayloadListeners(t *testing.T) {
	tests := []struct {
		p    Payload
		want ListenerType
	}{
		{Click{}, ListenClick},
		{Scroll{}, ListenScroll},
		{CursorMove{}, ListenMouseMove},
		{CursorEnter{}, ListenHover},
		{CursorLeave{}, ListenHover},
		{Dropped{}, ListenDrop},
		{Key{}, ListenKey},
		{Text{}, ListenText},
		{Selection{}, ListenSelect},
	}
	for _, tt := range tests {
		if got := tt.p.Listener(); got != tt.want {
			t.Errorf("%T.Listener() = %s, want %s", tt.p, got, tt.want)
		}
	}
}
