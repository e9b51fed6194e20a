// Package http provides http transport for inbox
package http

import (
	stdhttp "net/http"

	"nadbot/internal/modkit/httpkit"
	"nadbot/internal/services/inbox/domain"
	svc "nadbot/internal/services/inbox/service"
)

// Register mounts inbox endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.IncomingMessage](r, "/messages", h.message)
	httpkit.PostJSON[domain.ListInput](r, "/appointments/list", h.list)
	httpkit.PostJSON[domain.EditInput](r, "/appointments/edit", h.edit)
	httpkit.PostJSON[domain.DeleteInput](r, "/appointments/delete", h.del)
}

type handlers struct{ svc svc.Service }

func (h *handlers) message(r *stdhttp.Request, in domain.IncomingMessage) (any, error) {
	return h.svc.Handle(r.Context(), in)
}

func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

func (h *handlers) edit(r *stdhttp.Request, in domain.EditInput) (any, error) {
	return h.svc.Edit(r.Context(), in)
}

func (h *handlers) del(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
