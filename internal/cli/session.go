package cli

import (
	"fmt"

	"github.com/mesh-intelligence/lumen/internal/service"
	"github.com/mesh-intelligence/lumen/internal/sqlite"
	"github.com/mesh-intelligence/lumen/pkg/state"
	"github.com/mesh-intelligence/lumen/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must Detach it.
func (a *app) attachBackend() (*sqlite.Backend, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(types.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// withService runs fn against a service loaded from the data directory.
func (a *app) withService(fn func(svc *service.Service) error) (err error) {
	backend, err := a.attachBackend()
	if err != nil {
		return err
	}
	defer func() {
		if derr := backend.Detach(); derr != nil && err == nil {
			err = derr
		}
	}()

	svc := service.New(backend, state.New(), service.WithLogger(a.log))
	if err := svc.Refresh(); err != nil {
		return err
	}
	return fn(svc)
}
