// Package sse fans chat events out to connected browser tabs over
// server-sent events. One stream per user; a newer connection replaces an
// older one.
package sse

import (
	"sync"

	"github.com/Raj-Aarav/FinWise/logger"
	"go.uber.org/zap"
)

// Stream is one client's event channel pair.
type Stream struct {
	Messages chan string
	Done     chan struct{}
}

// Broker tracks open streams by user ID.
type Broker struct {
	mu      sync.RWMutex
	streams map[string]*Stream
}

func NewBroker() *Broker {
	return &Broker{streams: make(map[string]*Stream)}
}

// Register opens a stream for the user, closing any previous one.
func (b *Broker) Register(userID string) *Stream {
	stream := &Stream{
		Messages: make(chan string, 16),
		Done:     make(chan struct{}),
	}

	b.mu.Lock()
	if old, ok := b.streams[userID]; ok {
		close(old.Done)
	}
	b.streams[userID] = stream
	b.mu.Unlock()

	return stream
}

// Unregister drops the user's stream if it is still the given one.
func (b *Broker) Unregister(userID string, stream *Stream) {
	b.mu.Lock()
	if current, ok := b.streams[userID]; ok && current == stream {
		delete(b.streams, userID)
	}
	b.mu.Unlock()
}

// Publish delivers a message to the user's open stream, if any. A full or
// absent stream drops the message; events are best-effort notifications.
func (b *Broker) Publish(userID, message string) {
	b.mu.RLock()
	stream, ok := b.streams[userID]
	b.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case stream.Messages <- message:
	default:
		logger.Get().Warn("dropping event for slow stream",
			zap.String("user_id", userID))
	}
}
