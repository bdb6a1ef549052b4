// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishToTopicOnly(t *testing.T) {
	b := NewBroker[int]()

	var a, other []int
	unsubA := b.Subscribe("a", func(v int) { a = append(a, v) })
	defer unsubA()
	unsubOther := b.Subscribe("b", func(v int) { other = append(other, v) })
	defer unsubOther()

	b.Publish("a", 1)
	b.Publish("a", 2)
	b.Publish("c", 3)

	assert.Equal(t, []int{1, 2}, a)
	assert.Empty(t, other)
}

func TestBroker_SubscriptionOrder(t *testing.T) {
	b := NewBroker[string]()

	var got []string
	b.Subscribe("t", func(v string) { got = append(got, "first:"+v) })
	b.Subscribe("t", func(v string) { got = append(got, "second:"+v) })

	b.Publish("t", "x")
	assert.Equal(t, []string{"first:x", "second:x"}, got)
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := NewBroker[int]()

	calls := 0
	unsubscribe := b.Subscribe("t", func(int) { calls++ })
	require.Equal(t, 1, b.Subscribers("t"))

	b.Publish("t", 1)
	unsubscribe()
	unsubscribe()
	b.Publish("t", 2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.Subscribers("t"))
}

func TestBroker_UnsubscribeKeepsOthers(t *testing.T) {
	b := NewBroker[int]()

	var kept []int
	first := b.Subscribe("t", func(int) {})
	b.Subscribe("t", func(v int) { kept = append(kept, v) })

	first()
	b.Publish("t", 7)

	assert.Equal(t, []int{7}, kept)
	assert.Equal(t, 1, b.Subscribers("t"))
}

func TestBroker_SubscribeChan(t *testing.T) {
	b := NewBroker[int]()
	ctx, cancel := context.WithCancel(context.Background())

	ch := b.SubscribeChan(ctx, "t", 2)
	b.Publish("t", 1)
	b.Publish("t", 2)
	b.Publish("t", 3) // evicts 1, buffer is full

	assert.Equal(t, 2, <-ch)
	assert.Equal(t, 3, <-ch)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel was not closed after cancel")
	}

	assert.Eventually(t, func() bool { return b.Subscribers("t") == 0 }, time.Second, 10*time.Millisecond)
	assert.NotPanics(t, func() { b.Publish("t", 4) })
}

func TestBroker_SubscribeChan_KeepsLatest(t *testing.T) {
	b := NewBroker[string]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.SubscribeChan(ctx, "core", 1)
	b.Publish("core", "missing")
	b.Publish("core", "present")

	select {
	case v := <-ch:
		assert.Equal(t, "present", v)
	case <-time.After(time.Second):
		t.Fatal("no value delivered")
	}

	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %q", v)
	default:
	}
}

func TestBroker_SubscribeChan_Unbuffered(t *testing.T) {
	b := NewBroker[int]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.SubscribeChan(ctx, "t", 0)
	done := make(chan struct{})
	go func() {
		b.Publish("t", 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a channel without a reader")
	}
	assert.Empty(t, ch)
}
