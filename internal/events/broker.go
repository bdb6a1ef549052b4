// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events is a small in-process publish/subscribe hub. Topics are plain
// strings, usually the id of the operation that produces the events.
package events

import (
	"context"
	"sync"
)

// Broker fans values of type T out to the handlers subscribed to a topic.
// Handlers run synchronously on the publisher's goroutine, in subscription
// order.
type Broker[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	topics map[string]map[uint64]func(T)
	order  map[string][]uint64
}

// NewBroker returns an empty broker.
func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		topics: make(map[string]map[uint64]func(T)),
		order:  make(map[string][]uint64),
	}
}

// Subscribe registers handler for topic. The returned function removes the
// subscription; calling it more than once is safe.
func (b *Broker[T]) Subscribe(topic string, handler func(T)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[uint64]func(T))
	}
	b.topics[topic][id] = handler
	b.order[topic] = append(b.order[topic], id)

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(topic, id) })
	}
}

// SubscribeChan delivers topic values on a buffered channel until ctx is
// done, then closes it. When the buffer is full the oldest pending value is
// discarded, so a slow reader always ends up with the latest one.
func (b *Broker[T]) SubscribeChan(ctx context.Context, topic string, buffer int) <-chan T {
	ch := make(chan T, buffer)

	var mu sync.Mutex
	closed := false
	unsubscribe := b.Subscribe(topic, func(v T) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}

// Publish delivers v to every current subscriber of topic.
func (b *Broker[T]) Publish(topic string, v T) {
	b.mu.RLock()
	handlers := make([]func(T), 0, len(b.order[topic]))
	for _, id := range b.order[topic] {
		handlers = append(handlers, b.topics[topic][id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(v)
	}
}

// Subscribers returns the number of handlers registered for topic.
func (b *Broker[T]) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

func (b *Broker[T]) remove(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.topics[topic], id)
	ids := b.order[topic]
	for i, v := range ids {
		if v == id {
			b.order[topic] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(b.topics[topic]) == 0 {
		delete(b.topics, topic)
		delete(b.order, topic)
	}
}
