package router

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

var ErrWaitTimeout = errors.New("timed out waiting for a response")

type pendingWait struct {
	id    uint64
	match func(*discordgo.Message) bool
	ch    chan *discordgo.Message
}

// Waiter hands incoming messages to commands that wait for an answer
type Waiter struct {
	mu      sync.Mutex
	nextID  uint64
	pending []*pendingWait
}

// NewWaiter creates a waiter with nothing pending
func NewWaiter() *Waiter {
	return &Waiter{}
}

// Wait blocks until a dispatched message matches, the timeout passes or
// ctx is done
func (w *Waiter) Wait(ctx context.Context, match func(*discordgo.Message) bool, timeout time.Duration) (*discordgo.Message, error) {
	p := &pendingWait{match: match, ch: make(chan *discordgo.Message, 1)}

	w.mu.Lock()
	w.nextID++
	p.id = w.nextID
	w.pending = append(w.pending, p)
	w.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var err error
	select {
	case m := <-p.ch:
		return m, nil
	case <-timer.C:
		err = ErrWaitTimeout
	case <-ctx.Done():
		err = ctx.Err()
	}

	// a message dispatched while the wait was expiring still belongs to it
	if m := w.withdraw(p); m != nil {
		return m, nil
	}
	return nil, err
}

// Dispatch offers m to the oldest matching wait. It reports whether m was
// taken, in which case it must not run as a command.
func (w *Waiter) Dispatch(m *discordgo.Message) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, p := range w.pending {
		if !p.match(m) {
			continue
		}
		p.ch <- m
		w.pending = append(w.pending[:i], w.pending[i+1:]...)
		return true
	}
	return false
}

// Pending returns the number of waits in progress
func (w *Waiter) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// withdraw removes p and returns the message Dispatch handed it before
// the removal, if any
func (w *Waiter) withdraw(p *pendingWait) *discordgo.Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, q := range w.pending {
		if q.id == p.id {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return nil
		}
	}
	select {
	case m := <-p.ch:
		return m
	default:
		return nil
	}
}
