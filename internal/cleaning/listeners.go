package cleaning

import "github.com/google/uuid"

// CellChange describes one cell mutation.
type CellChange struct {
	X, Y int
	Old  Cell
	New  Cell
}

// ChangeListener observes cell mutations. Listeners run synchronously inside
// ChangeCell and must not mutate the model they observe.
type ChangeListener interface {
	CellChanged(CellChange)
}

// ChangeListenerFunc adapts a plain function to ChangeListener.
type ChangeListenerFunc func(CellChange)

func (f ChangeListenerFunc) CellChanged(c CellChange) { f(c) }

// Subscription identifies a registered listener.
type Subscription struct {
	id uuid.UUID
}

func (s Subscription) String() string { return s.id.String() }

type registration struct {
	sub      Subscription
	listener ChangeListener
}

// AddChangeListener registers l and returns the handle needed to remove it.
func (m *Model) AddChangeListener(l ChangeListener) Subscription {
	sub := Subscription{id: uuid.New()}
	m.listeners = append(m.listeners, registration{sub: sub, listener: l})
	return sub
}

// RemoveChangeListener drops the registration for sub. It reports false when
// the subscription is unknown or was already removed.
func (m *Model) RemoveChangeListener(sub Subscription) bool {
	for i, r := range m.listeners {
		if r.sub == sub {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Model) notify(c CellChange) {
	for _, r := range m.listeners {
		r.listener.CellChanged(c)
	}
}
