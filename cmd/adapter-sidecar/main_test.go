package main

import (
	"path/filepath"
	"testing"
	"time"

	"adapter-sidecar/adapter"
	"adapter-sidecar/dispatch"
	"adapter-sidecar/domain"
	"adapter-sidecar/phiclient"
	"adapter-sidecar/transport"
	"adapter-sidecar/wire"
)

func TestResolveSocketPath(t *testing.T) {
	t.Setenv("PHI_ADAPTER_SOCKET_PATH", "")

	if got := resolveSocketPath([]string{"adapter-sidecar", "/tmp/from-arg.sock"}); got != "/tmp/from-arg.sock" {
		t.Errorf("resolveSocketPath(arg) = %q", got)
	}
	if got := resolveSocketPath([]string{"adapter-sidecar"}); got != defaultSocketPath {
		t.Errorf("resolveSocketPath(none) = %q, want default", got)
	}

	t.Setenv("PHI_ADAPTER_SOCKET_PATH", "/tmp/from-env.sock")
	if got := resolveSocketPath([]string{"adapter-sidecar"}); got != "/tmp/from-env.sock" {
		t.Errorf("resolveSocketPath(env) = %q", got)
	}
}

// TestExamplePluginEndToEnd drives the demo adapter through a real Unix
// domain socket: bootstrap, then a channel invoke round trip, exercising
// transport, dispatch, adapter, and phiclient together.
func TestExamplePluginEndToEnd(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "sidecar.sock")

	srv := transport.NewServer(socketPath)
	reg := adapter.NewRegistry()
	registerExamplePlugin(reg)
	plugin, ok := reg.New("example")
	if !ok {
		t.Fatalf("example plugin type not registered")
	}

	_, handlers := adapter.NewHost(srv, "example", plugin)
	d := dispatch.NewDispatcher(srv, handlers)
	srv.OnFrame = d.HandleFrame

	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Stop()

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			_ = srv.PollOnce(10 * time.Millisecond)
		}
	}()
	defer close(stop)

	client, err := phiclient.Dial(socketPath)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	bootstrapPayload := []byte(`{"method":"sync.adapter.bootstrap","payload":{"adapterId":1,"adapter":{"name":"demo","plugin":"example"}}}`)
	descriptorFrame, err := client.Request(domain.MessageTypeRequest, 1, bootstrapPayload, time.Second)
	if err != nil {
		t.Fatalf("Request bootstrap: %v", err)
	}
	root, err := wire.ParseObject(descriptorFrame.Payload)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if kind, _ := wire.DecodeString(root["kind"]); kind != "adapterDescriptor" {
		t.Fatalf("kind = %q, want adapterDescriptor", kind)
	}

	invokePayload := []byte(`{"method":"cmd.channel.invoke","cmdId":7,"payload":{"deviceExternalId":"d1","channelExternalId":"c1","value":0.75}}`)
	// The reply is correlated on the request's cmdId (7), not on the
	// request frame's correlation id, so the client waits on 7.
	resp, err := client.Request(domain.MessageTypeRequest, 7, invokePayload, time.Second)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}

	invokeRoot, err := wire.ParseObject(resp.Payload)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if status, _ := wire.DecodeI64(invokeRoot["status"]); status != int64(domain.StatusSuccess) {
		t.Errorf("status = %d, want Success", status)
	}
	if fv, _ := wire.DecodeF64(invokeRoot["finalValue"]); fv != 0.75 {
		t.Errorf("finalValue = %v, want 0.75", fv)
	}
}
