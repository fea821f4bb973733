package dispatch

import (
	"adapter-sidecar/domain"
	"adapter-sidecar/wire"
)

// EventSink is anything that can transmit a fully-framed event; Dispatcher
// satisfies it via its underlying transport, and tests can substitute a
// fake to capture emitted bytes without a real socket.
type EventSink interface {
	Send(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte) error
}

func sendEvent(sink EventSink, payload []byte) error {
	return sink.Send(domain.MessageTypeEvent, 0, payload)
}

// PublishConnectionStateChanged emits connectionStateChanged{connected}.
func PublishConnectionStateChanged(sink EventSink, connected bool) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("connectionStateChanged")
	e.Key("connected")
	e.Bool(connected)
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishError emits error{message, ctx, params}.
func PublishError(sink EventSink, message string, params domain.ScalarList, ctx string) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("error")
	e.Key("message")
	e.String(message)
	e.Key("ctx")
	e.String(ctx)
	e.Key("params")
	e.ScalarList(params)
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishAdapterMetaUpdated emits adapterMetaUpdated{metaPatch}. Blank
// input is normalized to an empty object, matching the meta convention
// used everywhere else in the wire format.
func PublishAdapterMetaUpdated(sink EventSink, metaPatchJSON domain.JsonText) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("adapterMetaUpdated")
	e.Key("metaPatch")
	e.Raw([]byte(metaPatchJSON))
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishAdapterDescriptorUpdated emits adapterDescriptorUpdated{descriptor}
// — the typed-adapter layer's replacement for static meta transport.
func PublishAdapterDescriptorUpdated(sink EventSink, descriptorJSON domain.JsonText) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("adapterDescriptorUpdated")
	e.Key("descriptor")
	e.Raw([]byte(descriptorJSON))
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishChannelStateUpdated emits channelStateUpdated{deviceExternalId,
// channelExternalId, value, tsMs}. tsMs is stamped with wall-clock time
// when the caller passes 0.
func PublishChannelStateUpdated(sink EventSink, deviceExternalID, channelExternalID domain.ExternalId, value domain.ScalarValue, tsMs int64) error {
	if tsMs <= 0 {
		tsMs = nowMs()
	}
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("channelStateUpdated")
	e.Key("deviceExternalId")
	e.String(deviceExternalID)
	e.Key("channelExternalId")
	e.String(channelExternalID)
	e.Key("value")
	e.Scalar(value)
	e.Key("tsMs")
	e.Int(tsMs)
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishDeviceUpdated emits deviceUpdated{payload:{device, channels[]}}.
func PublishDeviceUpdated(sink EventSink, device domain.Device, channels []domain.Channel) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("deviceUpdated")
	e.Key("payload")
	e.BeginObject()
	e.Key("device")
	writeDevice(e, device)
	e.Key("channels")
	e.BeginArray()
	for _, c := range channels {
		e.ArrayElement()
		writeChannel(e, c)
	}
	e.EndArray()
	e.EndObject()
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishDeviceRemoved emits deviceRemoved{deviceExternalId}.
func PublishDeviceRemoved(sink EventSink, deviceExternalID domain.ExternalId) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("deviceRemoved")
	e.Key("deviceExternalId")
	e.String(deviceExternalID)
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishChannelUpdated emits channelUpdated{payload:{deviceExternalId,
// channel}}.
func PublishChannelUpdated(sink EventSink, deviceExternalID domain.ExternalId, channel domain.Channel) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("channelUpdated")
	e.Key("payload")
	e.BeginObject()
	e.Key("deviceExternalId")
	e.String(deviceExternalID)
	e.Key("channel")
	writeChannel(e, channel)
	e.EndObject()
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishRoomUpdated emits roomUpdated{room}.
func PublishRoomUpdated(sink EventSink, room domain.Room) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("roomUpdated")
	e.Key("room")
	writeRoom(e, room)
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishRoomRemoved emits roomRemoved{roomExternalId}.
func PublishRoomRemoved(sink EventSink, roomExternalID domain.ExternalId) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("roomRemoved")
	e.Key("roomExternalId")
	e.String(roomExternalID)
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishGroupUpdated emits groupUpdated{group}.
func PublishGroupUpdated(sink EventSink, group domain.Group) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("groupUpdated")
	e.Key("group")
	writeGroup(e, group)
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishGroupRemoved emits groupRemoved{groupExternalId}.
func PublishGroupRemoved(sink EventSink, groupExternalID domain.ExternalId) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("groupRemoved")
	e.Key("groupExternalId")
	e.String(groupExternalID)
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishScenesUpdated emits scenesUpdated{scenes[]}.
func PublishScenesUpdated(sink EventSink, scenes []domain.Scene) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("scenesUpdated")
	e.Key("scenes")
	e.BeginArray()
	for _, s := range scenes {
		e.ArrayElement()
		writeScene(e, s)
	}
	e.EndArray()
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}

// PublishFullSyncCompleted emits fullSyncCompleted{}.
func PublishFullSyncCompleted(sink EventSink) error {
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("fullSyncCompleted")
	e.EndObject()
	return sendEvent(sink, e.Bytes())
}
