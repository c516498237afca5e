package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/BruksfildServices01/barber-admin/internal/audit"
	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

func Admin() *auth.User {
	return &auth.User{ID: 1, Email: AdminEmail, Name: "Admin"}
}

func Stranger() *auth.User {
	return &auth.User{ID: 2, Email: "intruso@barber.com"}
}

type AuditRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *AuditRecorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *AuditRecorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

// Uploader devolve Image ou Err e conta as chamadas.
type Uploader struct {
	Image   storage.Image
	Err     error
	Calls   int
	Folders []storage.Folder
}

func (u *Uploader) Upload(_ context.Context, folder storage.Folder, src io.Reader) (*storage.Image, error) {
	u.Calls++
	u.Folders = append(u.Folders, folder)
	if src != nil {
		_, _ = io.Copy(io.Discard, src)
	}
	if u.Err != nil {
		return nil, u.Err
	}
	img := u.Image
	return &img, nil
}

type Harness struct {
	Deps  usecase.Deps
	Stale *invalidate.Memory
	Audit *AuditRecorder
}

func NewHarness(adminEmail string) *Harness {
	h := &Harness{Stale: invalidate.NewMemory(), Audit: &AuditRecorder{}}
	h.Deps = usecase.Deps{
		Guard: auth.NewGuard(adminEmail),
		Stale: h.Stale,
		Audit: h.Audit,
	}
	return h
}

func (h *Harness) Version(view invalidate.View) int64 {
	v, _ := h.Stale.Version(context.Background(), view)
	return v
}
