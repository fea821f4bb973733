package middleware

import (
	"golang.org/x/time/rate"

	"adapter-sidecar/domain"
)

// RateLimitMiddleware protects the dispatcher from a misbehaving core
// hammering cmd.* methods, using a token-bucket limiter shared across every
// command it wraps. A denied command reports CmdStatus_Busy rather than the
// teacher's generic RPC error string, so a well-behaved core can treat it
// exactly like any other busy response.
func RateLimitMiddleware(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next HandlerFunc) HandlerFunc {
		return func(method string, cmdID domain.CmdId) domain.CmdResponse {
			if !limiter.Allow() {
				return domain.CmdResponse{ID: cmdID, Status: domain.StatusBusy, Error: "rate limit exceeded"}
			}
			return next(method, cmdID)
		}
	}
}
