package httpkit

import (
	"net/http"
	"testing"

	phttp "nadbot/internal/platform/net/http"
)

// fakeVerbRouter records the last mount for assertions
type fakeVerbRouter struct {
	verb string
	path string
	h    phttp.Handler
	n    int
}

func (f *fakeVerbRouter) record(verb, path string, h phttp.Handler) {
	f.verb, f.path, f.h = verb, path, h
	f.n++
}

func (f *fakeVerbRouter) Route(_ string, fn func(Router))          { fn(f) }
func (f *fakeVerbRouter) Group(fn func(Router))                    { fn(f) }
func (f *fakeVerbRouter) Use(_ ...func(http.Handler) http.Handler) {}
func (f *fakeVerbRouter) Mux() http.Handler                        { return http.NewServeMux() }
func (f *fakeVerbRouter) Handle(string, http.Handler)              {}
func (f *fakeVerbRouter) Get(p string, h phttp.Handler)            { f.record("GET", p, h) }
func (f *fakeVerbRouter) Post(p string, h phttp.Handler)           { f.record("POST", p, h) }
func (f *fakeVerbRouter) Put(p string, h phttp.Handler)            { f.record("PUT", p, h) }
func (f *fakeVerbRouter) Patch(p string, h phttp.Handler)          { f.record("PATCH", p, h) }
func (f *fakeVerbRouter) Delete(p string, h phttp.Handler)         { f.record("DELETE", p, h) }
func (f *fakeVerbRouter) Head(p string, h phttp.Handler)           { f.record("HEAD", p, h) }
func (f *fakeVerbRouter) Options(p string, h phttp.Handler)        { f.record("OPTIONS", p, h) }

func TestJSONSugar_MountsByVerb(t *testing.T) {
	type req struct{ A int }
	h := func(_ *http.Request, _ req) (any, error) { return "ok", nil }

	tests := []struct {
		verb  string
		path  string
		mount func(r Router)
	}{
		{"GET", "/a", func(r Router) { GetJSON[req](r, "/a", h) }},
		{"POST", "/b", func(r Router) { PostJSON[req](r, "/b", h) }},
		{"PUT", "/c", func(r Router) { PutJSON[req](r, "/c", h) }},
		{"PATCH", "/d", func(r Router) { PatchJSON[req](r, "/d", h) }},
		{"DELETE", "/e", func(r Router) { DeleteJSON[req](r, "/e", h) }},
		{"OPTIONS", "/f", func(r Router) { OptionsJSON[req](r, "/f", h) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.verb, func(t *testing.T) {
			f := &fakeVerbRouter{}
			tc.mount(f)
			if f.n != 1 {
				t.Fatalf("expected 1 registration, got %d", f.n)
			}
			if f.verb != tc.verb || f.path != tc.path {
				t.Fatalf("mounted %s %s, want %s %s", f.verb, f.path, tc.verb, tc.path)
			}
			if f.h == nil {
				t.Fatalf("expected non-nil handler")
			}
		})
	}
}

func TestBodylessSugar_MountsByVerb(t *testing.T) {
	h := func(_ *http.Request) (any, error) { return "ok", nil }

	tests := []struct {
		verb  string
		path  string
		mount func(r Router)
	}{
		{"GET", "/g", func(r Router) { Get(r, "/g", h) }},
		{"POST", "/h", func(r Router) { Post(r, "/h", h) }},
		{"PUT", "/i", func(r Router) { Put(r, "/i", h) }},
		{"PATCH", "/j", func(r Router) { Patch(r, "/j", h) }},
		{"DELETE", "/k", func(r Router) { Delete(r, "/k", h) }},
		{"OPTIONS", "/l", func(r Router) { Options(r, "/l", h) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.verb, func(t *testing.T) {
			f := &fakeVerbRouter{}
			tc.mount(f)
			if f.n != 1 {
				t.Fatalf("expected 1 registration, got %d", f.n)
			}
			if f.verb != tc.verb || f.path != tc.path {
				t.Fatalf("mounted %s %s, want %s %s", f.verb, f.path, tc.verb, tc.path)
			}
			if f.h == nil {
				t.Fatalf("expected non-nil handler")
			}
		})
	}
}
