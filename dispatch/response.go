package dispatch

import (
	"time"

	"adapter-sidecar/domain"
	"adapter-sidecar/wire"
)

func nowMs() int64 { return time.Now().UnixMilli() }

func defaultCmdResponse(cmdId domain.CmdId, message string) domain.CmdResponse {
	return domain.CmdResponse{
		ID:     cmdId,
		Status: domain.StatusNotImplemented,
		Error:  message,
		TsMs:   nowMs(),
	}
}

func defaultActionResponse(cmdId domain.CmdId, message string) domain.ActionResponse {
	return domain.ActionResponse{
		ID:         cmdId,
		Status:     domain.StatusNotImplemented,
		Error:      message,
		ResultType: domain.ActionResultNone,
		TsMs:       nowMs(),
	}
}

// encodeCmdResult renders a CmdResponse's JSON body, used for every
// cmd.channel.invoke, cmd.device.name.update, cmd.device.effect.invoke, and
// cmd.scene.invoke reply.
func encodeCmdResult(r domain.CmdResponse) []byte {
	ts := r.TsMs
	if ts <= 0 {
		ts = nowMs()
	}
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("cmdResult")
	e.Key("cmdId")
	e.CmdID(r.ID)
	e.Key("status")
	e.Int(int64(r.Status))
	e.Key("error")
	e.String(r.Error)
	e.Key("errorCtx")
	e.String(r.ErrorContext)
	e.Key("errorParams")
	e.ScalarList(r.ErrorParams)
	e.Key("finalValue")
	e.Scalar(r.FinalValue)
	e.Key("tsMs")
	e.Int(ts)
	e.EndObject()
	return e.Bytes()
}

// encodeActionResult renders an ActionResponse's JSON body, used for the
// cmd.adapter.action.invoke reply.
func encodeActionResult(r domain.ActionResponse) []byte {
	ts := r.TsMs
	if ts <= 0 {
		ts = nowMs()
	}
	e := wire.NewEncoder()
	e.BeginObject()
	e.Key("kind")
	e.String("actionResult")
	e.Key("cmdId")
	e.CmdID(r.ID)
	e.Key("status")
	e.Int(int64(r.Status))
	e.Key("error")
	e.String(r.Error)
	e.Key("errorCtx")
	e.String(r.ErrorContext)
	e.Key("errorParams")
	e.ScalarList(r.ErrorParams)
	e.Key("resultType")
	e.Int(int64(r.ResultType))
	e.Key("resultValue")
	e.Scalar(r.ResultValue)
	e.Key("tsMs")
	e.Int(ts)
	e.EndObject()
	return e.Bytes()
}
