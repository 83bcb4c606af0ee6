// Package sessionmanager owns the collection of live RTP sessions on
// behalf of the (out-of-scope) RTSP signalling layer. It replaces the
// next-pointer chain design note 9 calls out: destroying a session
// removes it from a uuid-keyed map instead of splicing a linked list.
package sessionmanager

import (
	"sync"

	"github.com/google/uuid"

	"github.com/streamforge/mediacore/pkg/rtpsession"
)

// Manager is a concurrency-safe registry of sessions keyed by a
// randomly generated id. The RTSP layer hands out the id at SETUP
// time and uses it to look the session back up on every subsequent
// request.
type Manager struct {
	mutex    sync.RWMutex
	sessions map[uuid.UUID]*rtpsession.Session
}

// New builds an empty Manager.
func New() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]*rtpsession.Session)}
}

// Add registers sess under a freshly generated id and returns it.
func (m *Manager) Add(sess *rtpsession.Session) uuid.UUID {
	id := uuid.New()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sessions[id] = sess
	return id
}

// Get looks up a session by id.
func (m *Manager) Get(id uuid.UUID) (*rtpsession.Session, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Remove destroys the session registered under id, if any, and drops
// it from the collection. This is the direct replacement for the
// source's destroy-returns-next contract: there is no successor to
// return because callers iterate the map themselves.
func (m *Manager) Remove(id uuid.UUID) {
	m.mutex.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mutex.Unlock()

	if ok {
		sess.Destroy()
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}

// Each calls fn once per live session. fn must not call back into the
// Manager; Each holds the read lock for its duration.
func (m *Manager) Each(fn func(id uuid.UUID, sess *rtpsession.Session)) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	for id, sess := range m.sessions {
		fn(id, sess)
	}
}
