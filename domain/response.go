package domain

// CmdId is a request's command identifier, echoed back in its response.
type CmdId = uint64

// CorrelationId is the frame-header tag pairing a Request with its Response.
type CorrelationId = uint64

// CmdResponse answers cmd.channel.invoke, cmd.device.name.update, and
// cmd.device.effect.invoke, cmd.scene.invoke requests.
type CmdResponse struct {
	ID           CmdId
	Status       CmdStatus
	Error        string
	ErrorParams  ScalarList
	ErrorContext string
	FinalValue   ScalarValue
	TsMs         int64
}

// ActionResponse answers cmd.adapter.action.invoke requests.
type ActionResponse struct {
	ID           CmdId
	Status       CmdStatus
	Error        string
	ErrorParams  ScalarList
	ErrorContext string
	ResultType   ActionResultType
	ResultValue  ScalarValue
	TsMs         int64
}
