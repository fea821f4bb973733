// Package adapter is the optional typed-adapter convenience layer: a
// capability record with overridable handlers, a closed-world factory
// keyed by plugin type, and a Host that wires one adapter instance to one
// Dispatcher. It generalizes the C++ SDK's shallow polymorphic base class
// (one base, overridable virtual handlers, a descriptor getter set) into
// a Go handler-set struct that the dispatcher calls, mirroring how the
// teacher's server registers a receiver's methods except the "methods" are
// just struct fields a caller populates directly instead of being
// discovered by reflection.
package adapter

import (
	"adapter-sidecar/dispatch"
	"adapter-sidecar/domain"
)

// Plugin is the handler-set + descriptor-getter shape every adapter
// implementation fills in. Any handler field left nil falls back to the
// dispatcher's own default: a NotImplemented reply for the command and
// action handlers, no callback for OnBootstrap and OnUnknownRequest.
// Descriptor needs no handler, so a Host can always compose a bootstrap
// reply.
type Plugin struct {
	// DisplayName, APIVersion, Description, and Capabilities describe the
	// adapter's static identity for the bootstrap AdapterDescriptor.
	DisplayName  string
	APIVersion   string
	Description  string
	IconSVG      string
	ImageBase64  string
	TimeoutMs    int
	MaxInstances int
	Capabilities domain.AdapterCapabilities
	ConfigSchema domain.JsonText

	// OnBootstrap is called after the Host has cached the bootstrap record
	// but before the descriptor reply is sent, so implementations can
	// finish setting up device state from adapter.Adapter/StaticConfigJSON.
	OnBootstrap           func(dispatch.BootstrapRequest)
	OnChannelInvoke       func(dispatch.ChannelInvokeRequest) domain.CmdResponse
	OnAdapterActionInvoke func(dispatch.AdapterActionInvokeRequest) domain.ActionResponse
	OnDeviceNameUpdate    func(dispatch.DeviceNameUpdateRequest) domain.CmdResponse
	OnDeviceEffectInvoke  func(dispatch.DeviceEffectInvokeRequest) domain.CmdResponse
	OnSceneInvoke         func(dispatch.SceneInvokeRequest) domain.CmdResponse
	OnUnknownRequest      func(dispatch.UnknownRequest)
}

// Descriptor composes the plugin's static identity into an
// AdapterDescriptor, ready to encode into the bootstrap reply frame.
func (p *Plugin) Descriptor(pluginType string) domain.AdapterDescriptor {
	return domain.AdapterDescriptor{
		PluginType:       pluginType,
		DisplayName:      p.DisplayName,
		Description:      p.Description,
		APIVersion:       p.APIVersion,
		IconSVG:          p.IconSVG,
		ImageBase64:      p.ImageBase64,
		TimeoutMs:        p.TimeoutMs,
		MaxInstances:     p.MaxInstances,
		Capabilities:     p.Capabilities,
		ConfigSchemaJSON: p.ConfigSchema,
	}
}

// Factory constructs a fresh Plugin for one plugin type name.
type Factory func() *Plugin

// Registry is the closed-world mapping from plugin type string to
// constructor, populated once at startup before any bootstrap arrives —
// matching the teacher's "register before Serve" convention.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a plugin type name to its constructor. Registering the
// same type twice replaces the earlier constructor.
func (r *Registry) Register(pluginType string, factory Factory) {
	r.factories[pluginType] = factory
}

// New constructs a plugin instance for pluginType, or reports ok=false if
// no factory was registered for it.
func (r *Registry) New(pluginType string) (*Plugin, bool) {
	factory, ok := r.factories[pluginType]
	if !ok {
		return nil, false
	}
	return factory(), true
}
