// Package dispatch decodes request frames into typed requests, routes them
// to caller-supplied handlers, and encodes their responses and the
// sidecar's outbound events. It is the Go-side equivalent of the request
// handler this runtime's teacher registers services against, except the
// routing table is a closed set of six IPC methods instead of open
// reflection-discovered services, and encoding goes through the wire
// package's hand-rolled encoder instead of encoding/json.
package dispatch

import (
	"adapter-sidecar/domain"
	"adapter-sidecar/wire"
)

// BootstrapRequest is the payload of sync.adapter.bootstrap.
type BootstrapRequest struct {
	AdapterID        int
	CmdId            domain.CmdId
	CorrelationID    domain.CorrelationId
	Adapter          domain.Adapter
	StaticConfigJSON domain.JsonText
}

// ChannelInvokeRequest is the payload of cmd.channel.invoke.
type ChannelInvokeRequest struct {
	CmdId             domain.CmdId
	DeviceExternalID  domain.ExternalId
	ChannelExternalID domain.ExternalId
	Value             domain.ScalarValue
	HasScalarValue    bool
	ValueJSON         domain.JsonText
}

// AdapterActionInvokeRequest is the payload of cmd.adapter.action.invoke.
type AdapterActionInvokeRequest struct {
	CmdId      domain.CmdId
	ActionID   string
	ParamsJSON domain.JsonText
}

// DeviceNameUpdateRequest is the payload of cmd.device.name.update.
type DeviceNameUpdateRequest struct {
	CmdId            domain.CmdId
	DeviceExternalID domain.ExternalId
	Name             string
}

// DeviceEffectInvokeRequest is the payload of cmd.device.effect.invoke.
type DeviceEffectInvokeRequest struct {
	CmdId            domain.CmdId
	DeviceExternalID domain.ExternalId
	Effect           domain.DeviceEffect
	EffectID         string
	ParamsJSON       domain.JsonText
}

// SceneInvokeRequest is the payload of cmd.scene.invoke.
type SceneInvokeRequest struct {
	CmdId           domain.CmdId
	SceneExternalID domain.ExternalId
	GroupExternalID domain.ExternalId
	Action          string
}

// UnknownRequest is delivered for any method with no registered route.
type UnknownRequest struct {
	CmdId       domain.CmdId
	Method      string
	PayloadJSON domain.JsonText
}

// envelope is the outer {"method","cmdId","payload"} shape every request
// frame carries.
type envelope struct {
	Method  string
	CmdId   domain.CmdId
	Payload wire.Value
}

func decodeEnvelope(data []byte) (envelope, map[string]wire.Value, error) {
	root, err := wire.ParseObject(data)
	if err != nil {
		return envelope{}, nil, err
	}
	env := envelope{}
	env.Method, _ = wire.DecodeString(root["method"])
	if cmdIDVal, ok := root["cmdId"]; ok {
		env.CmdId, _ = wire.DecodeCmdId(cmdIDVal)
	}
	env.Payload = root["payload"]

	payloadMap := map[string]wire.Value{}
	if env.Payload.Present() && env.Payload.Kind == wire.KindObject {
		if m, err := wire.ParseObject(env.Payload.Raw); err == nil {
			payloadMap = m
		}
	}
	return env, payloadMap, nil
}

// firstString resolves an aliased string field: the first name wins,
// falling back to the second only when the first decodes to an empty
// string. This matches every "new-name, then legacy-name" fallback the
// original request handler applies field by field.
func firstString(m map[string]wire.Value, primary, secondary string) string {
	if v, ok := m[primary]; ok {
		if s, ok := wire.DecodeString(v); ok && s != "" {
			return s
		}
	}
	if secondary == "" {
		return ""
	}
	if v, ok := m[secondary]; ok {
		s, _ := wire.DecodeString(v)
		return s
	}
	return ""
}

func stringField(m map[string]wire.Value, key string) string {
	s, _ := wire.DecodeString(m[key])
	return s
}

func intField(m map[string]wire.Value, key string) int64 {
	n, _ := wire.DecodeI64(m[key])
	return n
}

// jsonOrEmptyObject returns a member's raw JSON text, or "{}" when the
// member is absent or blank — the wire format never sends an empty
// params/config document as a bare empty string.
func jsonOrEmptyObject(m map[string]wire.Value, key string) domain.JsonText {
	v, ok := m[key]
	if !ok {
		return "{}"
	}
	trimmed := wire.TrimSpace(v.Raw)
	if len(trimmed) == 0 {
		return "{}"
	}
	return string(trimmed)
}

func rawJSONOrEmpty(v wire.Value) domain.JsonText {
	if !v.Present() {
		return ""
	}
	return string(v.Raw)
}

// decodeBootstrapRequest parses the payload of sync.adapter.bootstrap.
func decodeBootstrapRequest(cmdId domain.CmdId, payloadMap map[string]wire.Value) BootstrapRequest {
	req := BootstrapRequest{CmdId: cmdId}
	req.AdapterID = int(intField(payloadMap, "adapterId"))
	req.StaticConfigJSON = rawJSONOrEmpty(payloadMap["staticConfig"])

	adapterVal, ok := payloadMap["adapter"]
	if !ok || adapterVal.Kind != wire.KindObject {
		return req
	}
	adapterMap, err := wire.ParseObject(adapterVal.Raw)
	if err != nil {
		return req
	}

	a := &req.Adapter
	a.Name = stringField(adapterMap, "name")
	a.Host = stringField(adapterMap, "host")
	a.IP = stringField(adapterMap, "ip")
	a.Port = uint16(intField(adapterMap, "port"))
	a.User = stringField(adapterMap, "user")
	a.Password = firstString(adapterMap, "pw", "password")
	a.Token = stringField(adapterMap, "token")
	a.PluginType = firstString(adapterMap, "plugin", "pluginType")
	a.ExternalID = firstString(adapterMap, "id", "externalId")
	a.MetaJSON = rawJSONOrEmpty(adapterMap["meta"])
	a.Flags = domain.AdapterFlag(intField(adapterMap, "flags"))
	return req
}

func decodeChannelInvokeRequest(cmdId domain.CmdId, payloadMap map[string]wire.Value) ChannelInvokeRequest {
	req := ChannelInvokeRequest{CmdId: cmdId}
	req.DeviceExternalID = firstString(payloadMap, "deviceExternalId", "deviceId")
	req.ChannelExternalID = firstString(payloadMap, "channelExternalId", "channelId")
	valueVal := payloadMap["value"]
	req.ValueJSON = rawJSONOrEmpty(valueVal)
	if valueVal.Present() {
		if scalar, ok := wire.DecodeScalar(valueVal); ok {
			req.Value = scalar
			req.HasScalarValue = true
		}
	}
	return req
}

func decodeAdapterActionInvokeRequest(cmdId domain.CmdId, payloadMap map[string]wire.Value) AdapterActionInvokeRequest {
	return AdapterActionInvokeRequest{
		CmdId:      cmdId,
		ActionID:   stringField(payloadMap, "actionId"),
		ParamsJSON: jsonOrEmptyObject(payloadMap, "params"),
	}
}

func decodeDeviceNameUpdateRequest(cmdId domain.CmdId, payloadMap map[string]wire.Value) DeviceNameUpdateRequest {
	return DeviceNameUpdateRequest{
		CmdId:            cmdId,
		DeviceExternalID: firstString(payloadMap, "deviceExternalId", "deviceId"),
		Name:             stringField(payloadMap, "name"),
	}
}

func decodeDeviceEffectInvokeRequest(cmdId domain.CmdId, payloadMap map[string]wire.Value) DeviceEffectInvokeRequest {
	return DeviceEffectInvokeRequest{
		CmdId:            cmdId,
		DeviceExternalID: firstString(payloadMap, "deviceExternalId", "deviceId"),
		Effect:           domain.DeviceEffect(intField(payloadMap, "effect")),
		EffectID:         stringField(payloadMap, "effectId"),
		ParamsJSON:       jsonOrEmptyObject(payloadMap, "params"),
	}
}

func decodeSceneInvokeRequest(cmdId domain.CmdId, payloadMap map[string]wire.Value) SceneInvokeRequest {
	return SceneInvokeRequest{
		CmdId:           cmdId,
		SceneExternalID: firstString(payloadMap, "sceneExternalId", "sceneId"),
		GroupExternalID: stringField(payloadMap, "groupExternalId"),
		Action:          stringField(payloadMap, "action"),
	}
}
