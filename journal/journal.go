/*
Package journal records vector mutations and replays them.

A Recorder wraps a fixed-capacity vector and journals every mutation as an
Entry. Entries accumulate in a pending buffer until drained, and are
broadcast to subscribers as they happen. A recorded journal can be replayed
onto a fresh vector, reproducing the final state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package journal

import (
	"context"
	"errors"
	"sync"

	"github.com/eapache/queue"
	"github.com/guiguan/caster"
	"github.com/npillmayer/stackvec"
)

// Op identifies a journaled mutation.
type Op string

// Journaled mutations.
const (
	OpPush       Op = "push"
	OpPop        Op = "pop"
	OpInsert     Op = "insert"
	OpRemove     Op = "remove"
	OpSwapRemove Op = "swap-remove"
	OpSet        Op = "set"
	OpTruncate   Op = "truncate"
	OpClear      Op = "clear"
)

// ErrUnknownOp flags replay of a journal entry with an unrecognized op.
var ErrUnknownOp = errors.New("journal: unknown operation")

// Entry is one journaled mutation. Index and Value are meaningful for the
// ops that carry them; Count is the target length for truncation.
type Entry[T any] struct {
	Op    Op  `json:"op"`
	Index int `json:"index,omitempty"`
	Value T   `json:"value,omitempty"`
	Count int `json:"count,omitempty"`
}

// Recorder journals mutations applied to a vector. The zero value is not
// usable; create recorders with Record.
//
// The wrapped vector itself carries no internal locking; the recorder
// serializes the mutations that go through it, so a Recorder is safe for
// concurrent use. Subscribers receive entries on their own channels and
// may live on other goroutines.
type Recorder[T any] struct {
	mu      sync.Mutex
	vec     *stackvec.Vec[T]
	pending *queue.Queue   // entries journaled since the last Drain
	cast    *caster.Caster // broadcasts entries to subscribers
}

// Record wraps a vector in a Recorder. Mutations must go through the
// recorder from here on, or the journal will miss them.
func Record[T any](v *stackvec.Vec[T]) *Recorder[T] {
	return &Recorder[T]{
		vec:     v,
		pending: queue.New(),
		cast:    caster.New(nil),
	}
}

// Vec returns the wrapped vector for read access.
func (r *Recorder[T]) Vec() *stackvec.Vec[T] {
	return r.vec
}

func (r *Recorder[T]) journal(e Entry[T]) {
	r.pending.Add(e)
	r.cast.Pub(e)
	stackvec.T().Debugf("journal: %s at %d", e.Op, e.Index)
}

// Push appends an item and journals the mutation.
func (r *Recorder[T]) Push(item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.vec.Push(item); err != nil {
		return err
	}
	r.journal(Entry[T]{Op: OpPush, Value: item})
	return nil
}

// Pop removes the last item and journals the mutation.
func (r *Recorder[T]) Pop() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.vec.Pop()
	if ok {
		r.journal(Entry[T]{Op: OpPop})
	}
	return item, ok
}

// Insert places an item at the given index and journals the mutation.
func (r *Recorder[T]) Insert(index int, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.vec.Insert(index, item); err != nil {
		return err
	}
	r.journal(Entry[T]{Op: OpInsert, Index: index, Value: item})
	return nil
}

// Remove deletes the item at the given index and journals the mutation.
func (r *Recorder[T]) Remove(index int) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, err := r.vec.Remove(index)
	if err == nil {
		r.journal(Entry[T]{Op: OpRemove, Index: index})
	}
	return item, err
}

// SwapRemove deletes the item at the given index by swapping in the last
// item, and journals the mutation.
func (r *Recorder[T]) SwapRemove(index int) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, err := r.vec.SwapRemove(index)
	if err == nil {
		r.journal(Entry[T]{Op: OpSwapRemove, Index: index})
	}
	return item, err
}

// Set overwrites the item at the given index and journals the mutation.
func (r *Recorder[T]) Set(index int, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.vec.Set(index, item); err != nil {
		return err
	}
	r.journal(Entry[T]{Op: OpSet, Index: index, Value: item})
	return nil
}

// Truncate shortens the vector and journals the mutation.
func (r *Recorder[T]) Truncate(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vec.Truncate(count)
	r.journal(Entry[T]{Op: OpTruncate, Count: count})
}

// Clear empties the vector and journals the mutation.
func (r *Recorder[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vec.Clear()
	r.journal(Entry[T]{Op: OpClear})
}

// Drain removes and returns all pending journal entries, oldest first.
func (r *Recorder[T]) Drain() []Entry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]Entry[T], 0, r.pending.Length())
	for r.pending.Length() > 0 {
		entries = append(entries, r.pending.Remove().(Entry[T]))
	}
	return entries
}

// Pending returns the number of journal entries not yet drained.
func (r *Recorder[T]) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending.Length()
}

// Subscribe registers a listener for journal entries. Each broadcast
// message is an Entry[T]. The channel closes when ctx is done or the
// recorder is closed; cancel unsubscribes early.
func (r *Recorder[T]) Subscribe(ctx context.Context, capacity uint) (ch chan interface{}, cancel func()) {
	ch, _ = r.cast.Sub(ctx, capacity)
	return ch, func() { r.cast.Unsub(ch) }
}

// Close shuts down the broadcaster, closing all subscriber channels.
// Pending entries remain drainable.
func (r *Recorder[T]) Close() {
	r.cast.Close()
}

// Replay applies a journal to a fresh vector of the given capacity and
// returns it. Replaying onto the same capacity the journal was recorded
// with reproduces the recorded final state.
func Replay[T any](capacity int, entries []Entry[T]) (stackvec.Vec[T], error) {
	v := stackvec.New[T](capacity)
	for _, e := range entries {
		var err error
		switch e.Op {
		case OpPush:
			err = v.Push(e.Value)
		case OpPop:
			v.Pop()
		case OpInsert:
			err = v.Insert(e.Index, e.Value)
		case OpRemove:
			_, err = v.Remove(e.Index)
		case OpSwapRemove:
			_, err = v.SwapRemove(e.Index)
		case OpSet:
			err = v.Set(e.Index, e.Value)
		case OpTruncate:
			v.Truncate(e.Count)
		case OpClear:
			v.Clear()
		default:
			err = ErrUnknownOp
		}
		if err != nil {
			return v, err
		}
	}
	return v, nil
}
