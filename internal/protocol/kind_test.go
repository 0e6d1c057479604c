package protocol

import "testing"

func TestKindClass(t *testing.T) {
	cases := []struct {
		k    Kind
		want Class
	}{
		{Ping, ClassRequest},
		{UpdateFirmware, ClassRequest},
		{Pong, ClassResponse},
		{RebootAck, ClassResponse},
		{AlertEvent, ClassEvent},
		{ConnectionLost, ClassEvent},
	}
	for _, c := range cases {
		if got := c.k.Class(); got != c.want {
			t.Errorf("Kind(0x%02X).Class() = %v, want %v", byte(c.k), got, c.want)
		}
	}
}

func TestResponseKind(t *testing.T) {
	if got := ResponseKind(Ping); got != Pong {
		t.Errorf("ResponseKind(Ping) = 0x%02X, want 0x%02X", byte(got), byte(Pong))
	}
	if got := ResponseKind(GetStatus); got != StatusResponse {
		t.Errorf("ResponseKind(GetStatus) = 0x%02X, want 0x%02X", byte(got), byte(StatusResponse))
	}
}

func TestIsResponseIsEvent(t *testing.T) {
	if !Pong.IsResponse() || Pong.IsEvent() {
		t.Errorf("Pong: IsResponse=%v IsEvent=%v", Pong.IsResponse(), Pong.IsEvent())
	}
	if !AlertEvent.IsEvent() || AlertEvent.IsResponse() {
		t.Errorf("AlertEvent: IsResponse=%v IsEvent=%v", AlertEvent.IsResponse(), AlertEvent.IsEvent())
	}
	if Ping.IsResponse() || Ping.IsEvent() {
		t.Errorf("Ping: IsResponse=%v IsEvent=%v", Ping.IsResponse(), Ping.IsEvent())
	}
}
