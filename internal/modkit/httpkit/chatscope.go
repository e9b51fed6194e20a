package httpkit

import (
	"net/http"

	pnet "nadbot/internal/platform/net"
)

// ChatScopePort validates chat context. Stub until we wire a real service.
type ChatScopePort interface {
	Validate(r *http.Request, chatID string) error
}

// ChatScope is middleware that validates the chat ID from context using the port
func ChatScope(p ChatScopePort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			tid := pnet.ChatID(r.Context())
			if err := p.Validate(r, tid); err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
