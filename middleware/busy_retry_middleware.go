package middleware

import (
	"log"
	"time"

	"adapter-sidecar/domain"
)

// BusyRetryMiddleware re-invokes a handler with exponential backoff when it
// reports CmdStatus_Busy, up to maxRetries attempts, before giving up and
// forwarding the last busy response. This replaces the teacher's
// client-side "retry on transport error": here the retry happens
// server-side, synchronously, against a handler that returned a definite
// busy status rather than failed to connect.
func BusyRetryMiddleware(maxRetries int, baseDelay time.Duration) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(method string, cmdID domain.CmdId) domain.CmdResponse {
			resp := next(method, cmdID)
			for i := 0; i < maxRetries; i++ {
				if resp.Status != domain.StatusBusy {
					return resp
				}
				log.Printf("method=%s cmdId=%d busy, retry %d/%d", method, cmdID, i+1, maxRetries)
				time.Sleep(baseDelay * time.Duration(1<<i))
				resp = next(method, cmdID)
			}
			return resp
		}
	}
}
