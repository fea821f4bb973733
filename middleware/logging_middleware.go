package middleware

import (
	"log"
	"time"

	"adapter-sidecar/domain"
)

// LoggingMiddleware logs the method, cmdId, duration, and outcome status of
// every command it wraps.
func LoggingMiddleware() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(method string, cmdID domain.CmdId) domain.CmdResponse {
			start := time.Now()
			resp := next(method, cmdID)
			log.Printf("method=%s cmdId=%d status=%d duration=%s", method, cmdID, resp.Status, time.Since(start))
			if resp.Error != "" {
				log.Printf("method=%s cmdId=%d error=%s", method, cmdID, resp.Error)
			}
			return resp
		}
	}
}
