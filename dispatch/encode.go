package dispatch

import (
	"adapter-sidecar/domain"
	"adapter-sidecar/wire"
)

// writeMeta splices a meta/config JSON blob, normalizing blank to "{}".
func writeMeta(e *wire.Encoder, key string, raw domain.JsonText) {
	e.Key(key)
	e.Raw([]byte(raw))
}

func writeDevice(e *wire.Encoder, d domain.Device) {
	e.BeginObject()
	e.Key("id")
	e.String(d.ExternalID)
	e.Key("name")
	e.String(d.Name)
	e.Key("deviceClass")
	e.Int(int64(d.DeviceClass))
	e.Key("flags")
	e.Int(int64(d.Flags))
	e.Key("manufacturer")
	e.String(d.Manufacturer)
	e.Key("firmware")
	e.String(d.Firmware)
	e.Key("model")
	e.String(d.Model)
	writeMeta(e, "meta", d.MetaJSON)
	e.Key("effects")
	e.BeginArray()
	for _, eff := range d.Effects {
		e.ArrayElement()
		e.BeginObject()
		e.Key("effect")
		e.Int(int64(eff.Effect))
		e.Key("id")
		e.String(eff.ID)
		e.Key("label")
		e.String(eff.Label)
		e.Key("description")
		e.String(eff.Description)
		e.Key("requiresParams")
		e.Bool(eff.RequiresParams)
		writeMeta(e, "meta", eff.MetaJSON)
		e.EndObject()
	}
	e.EndArray()
	e.EndObject()
}

func writeChannel(e *wire.Encoder, c domain.Channel) {
	e.BeginObject()
	e.Key("id")
	e.String(c.ExternalID)
	e.Key("name")
	e.String(c.Name)
	e.Key("kind")
	e.Int(int64(c.Kind))
	e.Key("dataType")
	e.Int(int64(c.DataType))
	e.Key("flags")
	e.Int(int64(c.Flags))
	e.Key("unit")
	e.String(c.Unit)
	e.Key("minValue")
	e.Float(c.MinValue)
	e.Key("maxValue")
	e.Float(c.MaxValue)
	e.Key("stepValue")
	e.Float(c.StepValue)
	writeMeta(e, "meta", c.MetaJSON)
	e.Key("choices")
	e.BeginArray()
	for _, choice := range c.Choices {
		e.ArrayElement()
		e.BeginObject()
		e.Key("value")
		e.String(choice.Value)
		e.Key("label")
		e.String(choice.Label)
		e.EndObject()
	}
	e.EndArray()
	e.Key("lastValue")
	e.Scalar(c.LastValue)
	e.Key("lastUpdateMs")
	e.Int(c.LastUpdateMs)
	e.Key("hasValue")
	e.Bool(c.HasValue)
	e.EndObject()
}

func writeRoom(e *wire.Encoder, r domain.Room) {
	e.BeginObject()
	e.Key("externalId")
	e.String(r.ExternalID)
	e.Key("name")
	e.String(r.Name)
	e.Key("zone")
	e.String(r.Zone)
	e.Key("deviceExternalIds")
	writeStringArray(e, r.DeviceExternalIDs)
	writeMeta(e, "meta", r.MetaJSON)
	e.EndObject()
}

func writeGroup(e *wire.Encoder, g domain.Group) {
	e.BeginObject()
	e.Key("id")
	e.String(g.ExternalID)
	e.Key("name")
	e.String(g.Name)
	e.Key("zone")
	e.String(g.Zone)
	e.Key("deviceExternalIds")
	writeStringArray(e, g.DeviceExternalIDs)
	writeMeta(e, "meta", g.MetaJSON)
	e.EndObject()
}

func writeScene(e *wire.Encoder, s domain.Scene) {
	e.BeginObject()
	e.Key("id")
	e.String(s.ExternalID)
	e.Key("name")
	e.String(s.Name)
	e.Key("description")
	e.String(s.Description)
	e.Key("scopeId")
	e.String(s.ScopeExternalID)
	e.Key("scopeType")
	e.String(s.ScopeType)
	e.Key("avatarColor")
	e.String(s.AvatarColor)
	e.Key("image")
	e.String(s.Image)
	e.Key("presetTag")
	e.String(s.PresetTag)
	e.Key("state")
	e.Int(int64(s.State))
	e.Key("flags")
	e.Int(int64(s.Flags))
	writeMeta(e, "meta", s.MetaJSON)
	e.EndObject()
}

func writeStringArray(e *wire.Encoder, values []string) {
	e.BeginArray()
	for _, v := range values {
		e.ArrayElement()
		e.String(v)
	}
	e.EndArray()
}

func writeActionDescriptor(e *wire.Encoder, a domain.AdapterActionDescriptor) {
	e.BeginObject()
	e.Key("id")
	e.String(a.ID)
	e.Key("label")
	e.String(a.Label)
	e.Key("description")
	e.String(a.Description)
	e.Key("hasForm")
	e.Bool(a.HasForm)
	e.Key("danger")
	e.Bool(a.Danger)
	e.Key("cooldownMs")
	e.Int(int64(a.CooldownMs))
	writeMeta(e, "confirm", a.ConfirmJSON)
	writeMeta(e, "meta", a.MetaJSON)
	e.EndObject()
}

func writeCapabilities(e *wire.Encoder, c domain.AdapterCapabilities) {
	e.BeginObject()
	e.Key("required")
	e.Int(int64(c.Required))
	e.Key("optional")
	e.Int(int64(c.Optional))
	e.Key("flags")
	e.Int(int64(c.Flags))
	e.Key("factoryActions")
	e.BeginArray()
	for _, a := range c.FactoryActions {
		e.ArrayElement()
		writeActionDescriptor(e, a)
	}
	e.EndArray()
	e.Key("instanceActions")
	e.BeginArray()
	for _, a := range c.InstanceActions {
		e.ArrayElement()
		writeActionDescriptor(e, a)
	}
	e.EndArray()
	writeMeta(e, "defaults", c.DefaultsJSON)
	e.EndObject()
}

// EncodeAdapterDescriptor renders the typed-adapter layer's bootstrap
// reply body: a single "adapterDescriptor" response frame correlated to
// the bootstrap request's frame correlation id, composed from a Plugin's
// descriptor getters (component F).
func EncodeAdapterDescriptor(d domain.AdapterDescriptor) []byte {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("adapterDescriptor")
	e.Key("pluginType")
	e.String(d.PluginType)
	e.Key("displayName")
	e.String(d.DisplayName)
	e.Key("description")
	e.String(d.Description)
	e.Key("apiVersion")
	e.String(d.APIVersion)
	e.Key("iconSvg")
	e.String(d.IconSVG)
	e.Key("imageBase64")
	e.String(d.ImageBase64)
	e.Key("timeoutMs")
	e.Int(int64(d.TimeoutMs))
	e.Key("maxInstances")
	e.Int(int64(d.MaxInstances))
	e.Key("capabilities")
	writeCapabilities(e, d.Capabilities)
	writeMeta(e, "configSchema", d.ConfigSchemaJSON)
	e.EndObject()
	return e.Bytes()
}
