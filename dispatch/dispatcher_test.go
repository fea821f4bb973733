package dispatch

import (
	"testing"

	"adapter-sidecar/domain"
	"adapter-sidecar/frame"
	"adapter-sidecar/middleware"
	"adapter-sidecar/wire"
)

type sentFrame struct {
	msgType       domain.MessageType
	correlationID domain.CorrelationId
	payload       []byte
}

type fakeSender struct {
	sent []sentFrame
}

func (f *fakeSender) Send(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte) error {
	f.sent = append(f.sent, sentFrame{msgType, correlationID, payload})
	return nil
}

func requestFrame(correlationID domain.CorrelationId) frame.Header {
	h, _ := frame.Unpack(frame.Pack(domain.MessageTypeRequest, correlationID, 0))
	return h
}

// TestChannelInvokeRoundTrip exercises the scenario where a request with
// correlation id 7 carries cmdId 42, and the response is expected to
// correlate on the cmdId rather than the frame's header correlation id.
func TestChannelInvokeRoundTrip(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, Handlers{
		OnChannelInvoke: func(req ChannelInvokeRequest) domain.CmdResponse {
			if req.DeviceExternalID != "dev-1" || req.ChannelExternalID != "ch-1" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return domain.CmdResponse{Status: domain.StatusSuccess, FinalValue: domain.FloatValue(0.5)}
		},
	})

	payload := []byte(`{"method":"cmd.channel.invoke","cmdId":42,"payload":{"deviceExternalId":"dev-1","channelExternalId":"ch-1","value":0.5}}`)
	d.HandleFrame(requestFrame(7), payload)

	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d frames, want 1", len(sender.sent))
	}
	got := sender.sent[0]
	if got.msgType != domain.MessageTypeResponse {
		t.Errorf("msgType = %v, want Response", got.msgType)
	}
	if got.correlationID != 42 {
		t.Errorf("correlationID = %d, want 42 (cmdId, not header correlation id 7)", got.correlationID)
	}

	root, err := wire.ParseObject(got.payload)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if kind, _ := wire.DecodeString(root["kind"]); kind != "cmdResult" {
		t.Errorf("kind = %q, want cmdResult", kind)
	}
	if cmdID, _ := wire.DecodeCmdId(root["cmdId"]); cmdID != 42 {
		t.Errorf("cmdId = %d, want 42", cmdID)
	}
	if status, _ := wire.DecodeI64(root["status"]); status != int64(domain.StatusSuccess) {
		t.Errorf("status = %d, want %d", status, domain.StatusSuccess)
	}
	if fv, _ := wire.DecodeF64(root["finalValue"]); fv != 0.5 {
		t.Errorf("finalValue = %v, want 0.5", fv)
	}
}

func TestUnregisteredHandlerRepliesNotImplemented(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, Handlers{})

	payload := []byte(`{"method":"cmd.scene.invoke","cmdId":5,"payload":{"sceneExternalId":"s1"}}`)
	d.HandleFrame(requestFrame(1), payload)

	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d frames, want 1", len(sender.sent))
	}
	root, err := wire.ParseObject(sender.sent[0].payload)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if status, _ := wire.DecodeI64(root["status"]); status != int64(domain.StatusNotImplemented) {
		t.Errorf("status = %d, want NotImplemented", status)
	}
	if msg, _ := wire.DecodeString(root["error"]); msg != "Scene invoke handler not registered" {
		t.Errorf("error = %q, want %q", msg, "Scene invoke handler not registered")
	}
	if sender.sent[0].correlationID != 5 {
		t.Errorf("correlationID = %d, want 5", sender.sent[0].correlationID)
	}
}

func TestBootstrapIsFireAndForget(t *testing.T) {
	sender := &fakeSender{}
	var received BootstrapRequest
	got := false
	d := NewDispatcher(sender, Handlers{
		OnBootstrap: func(req BootstrapRequest) { received = req; got = true },
	})

	payload := []byte(`{"method":"sync.adapter.bootstrap","payload":{"adapterId":3,"adapter":{"name":"n","plugin":"demo"}}}`)
	d.HandleFrame(requestFrame(1), payload)

	if !got {
		t.Fatalf("OnBootstrap was never called")
	}
	if received.AdapterID != 3 || received.Adapter.Name != "n" || received.Adapter.PluginType != "demo" {
		t.Errorf("unexpected bootstrap request: %+v", received)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %d frames, want 0 (bootstrap has no reply)", len(sender.sent))
	}
}

func TestUnknownMethodWithCmdIdRepliesNotImplemented(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, Handlers{})

	payload := []byte(`{"method":"cmd.mystery","cmdId":9,"payload":{}}`)
	d.HandleFrame(requestFrame(1), payload)

	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d frames, want 1", len(sender.sent))
	}
	if sender.sent[0].correlationID != 9 {
		t.Errorf("correlationID = %d, want 9", sender.sent[0].correlationID)
	}

	root, err := wire.ParseObject(sender.sent[0].payload)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if msg, _ := wire.DecodeString(root["error"]); msg != "Unhandled IPC method: cmd.mystery" {
		t.Errorf("error = %q, want %q", msg, "Unhandled IPC method: cmd.mystery")
	}
}

func TestUnknownMethodWithoutCmdIdSendsNoReply(t *testing.T) {
	sender := &fakeSender{}
	notified := false
	d := NewDispatcher(sender, Handlers{
		OnUnknownRequest: func(req UnknownRequest) { notified = true },
	})

	payload := []byte(`{"method":"cmd.mystery","payload":{}}`)
	d.HandleFrame(requestFrame(1), payload)

	if !notified {
		t.Errorf("OnUnknownRequest was never called")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %d frames, want 0 (no cmdId means no reply)", len(sender.sent))
	}
}

func TestProtocolErrorOnBadJSONDoesNotCloseOrReply(t *testing.T) {
	sender := &fakeSender{}
	var msg string
	d := NewDispatcher(sender, Handlers{
		OnProtocolError: func(m string) { msg = m },
	})

	d.HandleFrame(requestFrame(1), []byte(`{not json`))

	if msg == "" {
		t.Errorf("OnProtocolError was never called")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %d frames, want 0", len(sender.sent))
	}
}

func TestNonRequestFramesAreIgnored(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, Handlers{
		OnUnknownRequest: func(req UnknownRequest) { t.Errorf("should not be called for non-Request frames") },
	})

	eventHeader, _ := frame.Unpack(frame.Pack(domain.MessageTypeEvent, 1, 0))
	d.HandleFrame(eventHeader, []byte(`{"method":"cmd.channel.invoke"}`))

	if len(sender.sent) != 0 {
		t.Errorf("sent = %d frames, want 0", len(sender.sent))
	}
}

func TestPublishFullSyncCompleted(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, Handlers{})

	if err := PublishFullSyncCompleted(d); err != nil {
		t.Fatalf("PublishFullSyncCompleted: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d frames, want 1", len(sender.sent))
	}
	got := sender.sent[0]
	if got.msgType != domain.MessageTypeEvent || got.correlationID != 0 {
		t.Errorf("got msgType=%v correlationID=%d, want Event/0", got.msgType, got.correlationID)
	}
	if string(got.payload) != `{"kind":"fullSyncCompleted"}` {
		t.Errorf("payload = %s", got.payload)
	}
}

// TestUseWrapsChannelInvokeWithMiddlewareChain confirms Dispatcher.Use
// actually decorates the routed handler instead of sitting unused: an
// installed middleware here overrides every response to Busy, so the
// reply the dispatcher sends must reflect it rather than the handler's
// own Success.
func TestUseWrapsChannelInvokeWithMiddlewareChain(t *testing.T) {
	sender := &fakeSender{}
	var seenMethod string
	var seenCmdID domain.CmdId
	d := NewDispatcher(sender, Handlers{
		OnChannelInvoke: func(req ChannelInvokeRequest) domain.CmdResponse {
			return domain.CmdResponse{Status: domain.StatusSuccess}
		},
	})
	d.Use(func(next middleware.HandlerFunc) middleware.HandlerFunc {
		return func(method string, cmdID domain.CmdId) domain.CmdResponse {
			seenMethod, seenCmdID = method, cmdID
			resp := next(method, cmdID)
			resp.Status = domain.StatusBusy
			return resp
		}
	})

	payload := []byte(`{"method":"cmd.channel.invoke","cmdId":11,"payload":{"deviceExternalId":"d","channelExternalId":"c"}}`)
	d.HandleFrame(requestFrame(1), payload)

	if seenMethod != "cmd.channel.invoke" || seenCmdID != 11 {
		t.Errorf("middleware saw method=%q cmdID=%d, want cmd.channel.invoke/11", seenMethod, seenCmdID)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d frames, want 1", len(sender.sent))
	}
	root, err := wire.ParseObject(sender.sent[0].payload)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if status, _ := wire.DecodeI64(root["status"]); status != int64(domain.StatusBusy) {
		t.Errorf("status = %d, want Busy (middleware should have overridden it)", status)
	}
}
