// Package module wires inbox into the API using modkit
package module

import (
	"net/http"

	"nadbot/internal/core/lexicon"
	"nadbot/internal/core/parser"
	modkit "nadbot/internal/modkit"
	"nadbot/internal/modkit/httpkit"

	adomain "nadbot/internal/services/appointments/domain"
	ihttp "nadbot/internal/services/inbox/http"
	isvc "nadbot/internal/services/inbox/service"
)

// Module implements the inbox API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc isvc.Service
}

// Ports declares the required injected port(s) for this module
type Ports struct {
	Appointments adomain.ServicePort
}

// New constructs the inbox module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("inbox"),
		modkit.WithPrefix("/inbox"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Appointments == nil {
		panic("inbox module requires Appointments port (from services/appointments)")
	}

	lex := lexicon.MustLoad()
	var popts []parser.Option
	if FromConfig(deps.Cfg).Tokenizer == TokenizerDict {
		popts = append(popts, parser.WithTokenizer(parser.NewDictTokenizer(lex.Vocabulary())))
	}
	svc := isvc.New(parser.New(lex, popts...), injected.Appointments)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ihttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
