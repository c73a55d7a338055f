package assistant

import "sync"

// Exchange is one question/answer turn kept in conversation memory.
type Exchange struct {
	Question string
	Answer   string
}

// WindowMemory keeps the most recent k exchanges for one knowledge domain.
// Older turns fall off the window as new ones arrive.
type WindowMemory struct {
	mu        sync.Mutex
	k         int
	exchanges []Exchange
}

func NewWindowMemory(k int) *WindowMemory {
	if k <= 0 {
		k = 10
	}
	return &WindowMemory{k: k}
}

func (m *WindowMemory) Add(question, answer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exchanges = append(m.exchanges, Exchange{Question: question, Answer: answer})
	if len(m.exchanges) > m.k {
		m.exchanges = m.exchanges[len(m.exchanges)-m.k:]
	}
}

// History returns a copy of the current window, oldest first.
func (m *WindowMemory) History() []Exchange {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Exchange, len(m.exchanges))
	copy(out, m.exchanges)
	return out
}

func (m *WindowMemory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exchanges = nil
}
