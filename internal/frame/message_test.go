package frame

import (
	"testing"

	"github.com/ErselSeyit/devproto/internal/metric"
	"github.com/ErselSeyit/devproto/internal/protocol"
)

func TestNewMetricsRequestDefaultsToAll(t *testing.T) {
	msg := NewMetricsRequest(5)
	if len(msg.Payload) != 1 || metric.Type(msg.Payload[0]) != metric.All {
		t.Errorf("expected single metric.All byte, got %v", msg.Payload)
	}
}

func TestNewMetricsRequestExplicitTypes(t *testing.T) {
	msg := NewMetricsRequest(5, metric.CPUUsage, metric.Temperature)
	want := []byte{byte(metric.CPUUsage), byte(metric.Temperature)}
	if len(msg.Payload) != len(want) {
		t.Fatalf("got %v, want %v", msg.Payload, want)
	}
	for i := range want {
		if msg.Payload[i] != want[i] {
			t.Errorf("byte %d: got 0x%02X, want 0x%02X", i, msg.Payload[i], want[i])
		}
	}
}

func TestNewCommandLayout(t *testing.T) {
	msg := NewCommand(1, protocol.CmdSetFanSpeed, []byte{0x64})
	if msg.Kind != protocol.ExecuteCommand {
		t.Fatalf("got kind 0x%02X", byte(msg.Kind))
	}
	decoded, err := protocol.DecodeCommandPayload(msg.Payload)
	if err != nil {
		t.Fatalf("DecodeCommandPayload: %v", err)
	}
	if decoded.Code != protocol.CmdSetFanSpeed || len(decoded.Params) != 1 || decoded.Params[0] != 0x64 {
		t.Errorf("got %+v", decoded)
	}
}

func TestNewStatusResponseRoundTrip(t *testing.T) {
	status := protocol.StatusPayload{Status: protocol.StatusWarning, Uptime: 10, Errors: 1, Warnings: 2}
	msg, err := NewStatusResponse(1, status)
	if err != nil {
		t.Fatalf("NewStatusResponse: %v", err)
	}
	got, err := protocol.DecodeStatusPayload(msg.Payload)
	if err != nil {
		t.Fatalf("DecodeStatusPayload: %v", err)
	}
	if got != status {
		t.Errorf("got %+v, want %+v", got, status)
	}
}
