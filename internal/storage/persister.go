package storage

import (
	"context"
	"errors"

	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/domain"
)

// Persister saves and restores household snapshots around projection runs.
// Storage failures are logged and swallowed: a run never aborts because of them.
type Persister struct {
	Store  Store
	Parser *config.InputParser
	Logger Logger
}

// NewPersister wraps store. A nil store behaves like NoopStore.
func NewPersister(store Store, logger Logger) *Persister {
	if store == nil {
		store = NoopStore{}
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Persister{Store: store, Parser: config.NewInputParser(), Logger: logger}
}

// Persist saves params under name and returns the revision id, or "" when the save failed.
func (p *Persister) Persist(ctx context.Context, name string, params *domain.InputParameters) string {
	snapshot := NewSnapshot(name, params)
	if err := p.Store.Save(ctx, snapshot); err != nil {
		p.Logger.Warnf("could not save household %q: %v", name, err)
		return ""
	}
	p.Logger.Debugf("saved household %q revision %s", name, snapshot.ID)
	return snapshot.ID
}

// Restore loads the household saved under name. Every field is normalized, so absent
// or invalid stored values come back as zero. found is false when nothing usable was
// stored; the returned parameters are then all zero.
func (p *Persister) Restore(ctx context.Context, name string) (params domain.InputParameters, found bool) {
	snapshot, err := p.Store.Load(ctx, name)
	switch {
	case errors.Is(err, ErrNotFound):
		p.Logger.Infof("no saved household %q", name)
		return domain.InputParameters{}, false
	case err != nil:
		p.Logger.Warnf("could not restore household %q: %v", name, err)
		return domain.InputParameters{}, false
	}
	return p.Parser.ParseValues(snapshot.Values), true
}
