package dispatch

import (
	"adapter-sidecar/domain"
	"adapter-sidecar/frame"
	"adapter-sidecar/middleware"
)

// Handlers is the set of callbacks a dispatcher routes decoded requests to.
// Every field is optional; an unset command handler falls back to a
// NotImplemented reply. Bootstrap never gets a reply, and an unknown method
// gets a NotImplemented reply only when it carries a non-zero cmdId.
type Handlers struct {
	OnBootstrap           func(BootstrapRequest)
	OnChannelInvoke       func(ChannelInvokeRequest) domain.CmdResponse
	OnAdapterActionInvoke func(AdapterActionInvokeRequest) domain.ActionResponse
	OnDeviceNameUpdate    func(DeviceNameUpdateRequest) domain.CmdResponse
	OnDeviceEffectInvoke  func(DeviceEffectInvokeRequest) domain.CmdResponse
	OnSceneInvoke         func(SceneInvokeRequest) domain.CmdResponse
	OnUnknownRequest      func(UnknownRequest)
	OnProtocolError       func(message string)
}

// Sender is the subset of transport.Server the dispatcher needs: sending
// framed bytes to whatever client is currently connected.
type Sender interface {
	Send(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte) error
}

// Dispatcher decodes Request frames, routes them through a closed table of
// six IPC methods plus an Unknown fallback, and encodes responses. It is
// the request-handling half of the runtime; PublishXxx functions in
// events.go cover the other half, outbound events.
type Dispatcher struct {
	sender   Sender
	handlers Handlers
	chain    middleware.Middleware
}

// NewDispatcher binds a Sender (normally a *transport.Server) and a set of
// handlers. Register the returned Dispatcher's HandleFrame as the
// transport's OnFrame callback.
func NewDispatcher(sender Sender, handlers Handlers) *Dispatcher {
	return &Dispatcher{sender: sender, handlers: handlers}
}

// Use installs the given middlewares around every CmdResponse-returning
// handler (cmd.channel.invoke, cmd.device.name.update,
// cmd.device.effect.invoke, cmd.scene.invoke), applied in registration
// order exactly like middleware.Chain. Calling Use again replaces the
// previously installed chain.
func (d *Dispatcher) Use(middlewares ...middleware.Middleware) {
	d.chain = middleware.Chain(middlewares...)
}

// HandleFrame is the transport-level frame callback. It ignores every
// MessageType other than Request; frame-level integrity (magic, version)
// is the transport's concern and never reaches here.
func (d *Dispatcher) HandleFrame(h frame.Header, payload []byte) {
	if h.Type != domain.MessageTypeRequest {
		return
	}
	env, payloadMap, err := decodeEnvelope(payload)
	if err != nil {
		if d.handlers.OnProtocolError != nil {
			d.handlers.OnProtocolError(err.Error())
		}
		return
	}

	switch env.Method {
	case "sync.adapter.bootstrap":
		req := decodeBootstrapRequest(env.CmdId, payloadMap)
		req.CorrelationID = domain.CorrelationId(h.CorrelationID)
		if d.handlers.OnBootstrap != nil {
			d.handlers.OnBootstrap(req)
		}

	case "cmd.channel.invoke":
		req := decodeChannelInvokeRequest(env.CmdId, payloadMap)
		resp := middleware.WrapCmd(d.chain, env.Method, req.CmdId, func() domain.CmdResponse {
			if d.handlers.OnChannelInvoke != nil {
				return d.handlers.OnChannelInvoke(req)
			}
			return defaultCmdResponse(req.CmdId, "Channel invoke handler not registered")
		})
		d.replyCmd(req.CmdId, resp)

	case "cmd.adapter.action.invoke":
		req := decodeAdapterActionInvokeRequest(env.CmdId, payloadMap)
		var resp domain.ActionResponse
		if d.handlers.OnAdapterActionInvoke != nil {
			resp = d.handlers.OnAdapterActionInvoke(req)
		} else {
			resp = defaultActionResponse(req.CmdId, "Adapter action handler not registered")
		}
		d.replyAction(req.CmdId, resp)

	case "cmd.device.name.update":
		req := decodeDeviceNameUpdateRequest(env.CmdId, payloadMap)
		resp := middleware.WrapCmd(d.chain, env.Method, req.CmdId, func() domain.CmdResponse {
			if d.handlers.OnDeviceNameUpdate != nil {
				return d.handlers.OnDeviceNameUpdate(req)
			}
			return defaultCmdResponse(req.CmdId, "Device name update handler not registered")
		})
		d.replyCmd(req.CmdId, resp)

	case "cmd.device.effect.invoke":
		req := decodeDeviceEffectInvokeRequest(env.CmdId, payloadMap)
		resp := middleware.WrapCmd(d.chain, env.Method, req.CmdId, func() domain.CmdResponse {
			if d.handlers.OnDeviceEffectInvoke != nil {
				return d.handlers.OnDeviceEffectInvoke(req)
			}
			return defaultCmdResponse(req.CmdId, "Device effect handler not registered")
		})
		d.replyCmd(req.CmdId, resp)

	case "cmd.scene.invoke":
		req := decodeSceneInvokeRequest(env.CmdId, payloadMap)
		resp := middleware.WrapCmd(d.chain, env.Method, req.CmdId, func() domain.CmdResponse {
			if d.handlers.OnSceneInvoke != nil {
				return d.handlers.OnSceneInvoke(req)
			}
			return defaultCmdResponse(req.CmdId, "Scene invoke handler not registered")
		})
		d.replyCmd(req.CmdId, resp)

	default:
		req := UnknownRequest{CmdId: env.CmdId, Method: env.Method, PayloadJSON: rawJSONOrEmpty(env.Payload)}
		if d.handlers.OnUnknownRequest != nil {
			d.handlers.OnUnknownRequest(req)
		}
		if req.CmdId != 0 {
			d.sendCmdResult(defaultCmdResponse(req.CmdId, "Unhandled IPC method: "+env.Method))
		}
	}
}

// replyCmd applies the response-correlation rule (zero id/tsMs are filled
// in from the inbound cmdId and wall clock) and sends the reply.
func (d *Dispatcher) replyCmd(cmdId domain.CmdId, resp domain.CmdResponse) {
	if resp.ID == 0 {
		resp.ID = cmdId
	}
	if resp.TsMs == 0 {
		resp.TsMs = nowMs()
	}
	d.sendCmdResult(resp)
}

// replyAction applies the response-correlation rule and sends the reply.
func (d *Dispatcher) replyAction(cmdId domain.CmdId, resp domain.ActionResponse) {
	if resp.ID == 0 {
		resp.ID = cmdId
	}
	if resp.TsMs == 0 {
		resp.TsMs = nowMs()
	}
	d.sendActionResult(resp)
}

// sendCmdResult frames and transmits a CmdResponse. Response frames carry
// the answered cmdId as their correlation id, not the request frame's
// header correlation id.
func (d *Dispatcher) sendCmdResult(r domain.CmdResponse) {
	_ = d.sender.Send(domain.MessageTypeResponse, domain.CorrelationId(r.ID), encodeCmdResult(r))
}

func (d *Dispatcher) sendActionResult(r domain.ActionResponse) {
	_ = d.sender.Send(domain.MessageTypeResponse, domain.CorrelationId(r.ID), encodeActionResult(r))
}

// Send makes the dispatcher itself an EventSink, so the PublishXxx helpers
// in events.go can be called as PublishFullSyncCompleted(d), etc., without
// callers threading the transport through separately.
func (d *Dispatcher) Send(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte) error {
	return d.sender.Send(msgType, correlationID, payload)
}
