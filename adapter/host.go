package adapter

import (
	"sync"

	"adapter-sidecar/dispatch"
	"adapter-sidecar/domain"
)

// Sender is the subset of transport.Server a Host needs to send its
// dedicated adapterDescriptor reply.
type Sender interface {
	Send(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte) error
}

// Host owns one Plugin instance and supplies the dispatch.Handlers that
// wire a Dispatcher's callbacks to the plugin's handler fields. On
// bootstrap it caches the bootstrap record on itself and replies with a
// dedicated adapterDescriptor frame correlated to the bootstrap request's
// frame correlation id, exactly as spec.md's typed-adapter layer requires.
type Host struct {
	sender     Sender
	pluginType string
	plugin     *Plugin

	mu           sync.Mutex
	bootstrap    dispatch.BootstrapRequest
	bootstrapped bool
}

// NewHost binds a plugin instance to a sender and returns a Host along
// with the dispatch.Handlers it should register with dispatch.NewDispatcher.
func NewHost(sender Sender, pluginType string, plugin *Plugin) (*Host, dispatch.Handlers) {
	h := &Host{sender: sender, pluginType: pluginType, plugin: plugin}
	return h, dispatch.Handlers{
		OnBootstrap:           h.onBootstrap,
		OnChannelInvoke:       plugin.OnChannelInvoke,
		OnAdapterActionInvoke: plugin.OnAdapterActionInvoke,
		OnDeviceNameUpdate:    plugin.OnDeviceNameUpdate,
		OnDeviceEffectInvoke:  plugin.OnDeviceEffectInvoke,
		OnSceneInvoke:         plugin.OnSceneInvoke,
		OnUnknownRequest:      plugin.OnUnknownRequest,
	}
}

// Bootstrap returns the cached bootstrap record from the most recent
// connection, and whether one has arrived yet.
func (h *Host) Bootstrap() (dispatch.BootstrapRequest, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bootstrap, h.bootstrapped
}

func (h *Host) onBootstrap(req dispatch.BootstrapRequest) {
	h.mu.Lock()
	h.bootstrap = req
	h.bootstrapped = true
	h.mu.Unlock()

	if h.plugin.OnBootstrap != nil {
		h.plugin.OnBootstrap(req)
	}

	descriptor := h.plugin.Descriptor(h.pluginType)
	_ = h.sender.Send(domain.MessageTypeResponse, req.CorrelationID, dispatch.EncodeAdapterDescriptor(descriptor))
}
