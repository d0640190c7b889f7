package session

import (
	"context"
	"sync"
)

// guildLocks hands out one mutex per guild. Waiting honours ctx so a stuck
// backend call in one guild cannot wedge callers forever.
type guildLocks struct {
	mu    sync.Mutex
	locks map[string]*guildLock
}

type guildLock struct {
	ch   chan struct{}
	refs int
}

func newGuildLocks() *guildLocks {
	return &guildLocks{locks: make(map[string]*guildLock)}
}

func (g *guildLocks) acquire(ctx context.Context, guildID string) (func(), error) {
	g.mu.Lock()
	l, ok := g.locks[guildID]
	if !ok {
		l = &guildLock{ch: make(chan struct{}, 1)}
		g.locks[guildID] = l
	}
	l.refs++
	g.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-l.ch
				g.unref(guildID, l)
			})
		}, nil
	case <-ctx.Done():
		g.unref(guildID, l)
		return nil, ctx.Err()
	}
}

func (g *guildLocks) unref(guildID string, l *guildLock) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(g.locks, guildID)
	}
}

func (g *guildLocks) len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.locks)
}
