package adapter

import (
	"testing"

	"adapter-sidecar/dispatch"
	"adapter-sidecar/domain"
	"adapter-sidecar/wire"
)

type fakeSender struct {
	sent []struct {
		msgType       domain.MessageType
		correlationID domain.CorrelationId
		payload       []byte
	}
}

func (f *fakeSender) Send(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte) error {
	f.sent = append(f.sent, struct {
		msgType       domain.MessageType
		correlationID domain.CorrelationId
		payload       []byte
	}{msgType, correlationID, payload})
	return nil
}

func TestRegistryConstructsRegisteredPluginType(t *testing.T) {
	reg := NewRegistry()
	reg.Register("example", func() *Plugin { return &Plugin{DisplayName: "Example"} })

	p, ok := reg.New("example")
	if !ok {
		t.Fatalf("expected example plugin type to be registered")
	}
	if p.DisplayName != "Example" {
		t.Errorf("DisplayName = %q", p.DisplayName)
	}

	if _, ok := reg.New("missing"); ok {
		t.Errorf("expected missing plugin type to be absent")
	}
}

func TestHostSendsDescriptorOnBootstrap(t *testing.T) {
	sender := &fakeSender{}
	plugin := &Plugin{
		DisplayName: "Example Adapter",
		APIVersion:  "1.0",
	}
	var cachedName string
	plugin.OnBootstrap = func(req dispatch.BootstrapRequest) { cachedName = req.Adapter.Name }

	host, handlers := NewHost(sender, "example", plugin)
	handlers.OnBootstrap(dispatch.BootstrapRequest{
		AdapterID:     1,
		CorrelationID: 42,
		Adapter:       domain.Adapter{Name: "Living Room Hub"},
	})

	if cachedName != "Living Room Hub" {
		t.Errorf("plugin.OnBootstrap saw name = %q", cachedName)
	}
	bootstrap, ok := host.Bootstrap()
	if !ok || bootstrap.Adapter.Name != "Living Room Hub" {
		t.Errorf("Host.Bootstrap() = %+v, ok=%v", bootstrap, ok)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d frames, want 1", len(sender.sent))
	}
	got := sender.sent[0]
	if got.msgType != domain.MessageTypeResponse {
		t.Errorf("msgType = %v, want Response", got.msgType)
	}
	if got.correlationID != 42 {
		t.Errorf("correlationID = %d, want 42 (bootstrap's frame correlation id)", got.correlationID)
	}

	root, err := wire.ParseObject(got.payload)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if kind, _ := wire.DecodeString(root["kind"]); kind != "adapterDescriptor" {
		t.Errorf("kind = %q, want adapterDescriptor", kind)
	}
	if pt, _ := wire.DecodeString(root["pluginType"]); pt != "example" {
		t.Errorf("pluginType = %q, want example", pt)
	}
	if name, _ := wire.DecodeString(root["displayName"]); name != "Example Adapter" {
		t.Errorf("displayName = %q", name)
	}
}
