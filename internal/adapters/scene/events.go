package scene

import (
	"sync"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
)

var _ ports.EventBus = (*Bus)(nil)

// Bus is an in-process event feed for scene change and document load
// notifications. Subscriptions are keyed by token and idempotent; handlers
// are invoked in subscription order.
type Bus struct {
	mu sync.Mutex

	sceneOrder    []string
	sceneHandlers map[string]ports.SceneChangedHandler
	loadOrder     []string
	loadHandlers  map[string]ports.DocumentLoadedHandler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		sceneHandlers: make(map[string]ports.SceneChangedHandler),
		loadHandlers:  make(map[string]ports.DocumentLoadedHandler),
	}
}

// SubscribeSceneChanged registers a handler under the token. Subscribing an
// already-registered token replaces the handler without duplicating it.
func (b *Bus) SubscribeSceneChanged(token string, h ports.SceneChangedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.sceneHandlers[token]; !exists {
		b.sceneOrder = append(b.sceneOrder, token)
	}
	b.sceneHandlers[token] = h
}

// UnsubscribeSceneChanged removes the handler for the token, if any.
func (b *Bus) UnsubscribeSceneChanged(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.sceneHandlers[token]; !exists {
		return
	}
	delete(b.sceneHandlers, token)
	b.sceneOrder = removeToken(b.sceneOrder, token)
}

// SubscribeDocumentLoaded registers a handler under the token, idempotently.
func (b *Bus) SubscribeDocumentLoaded(token string, h ports.DocumentLoadedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.loadHandlers[token]; !exists {
		b.loadOrder = append(b.loadOrder, token)
	}
	b.loadHandlers[token] = h
}

// UnsubscribeDocumentLoaded removes the handler for the token, if any.
func (b *Bus) UnsubscribeDocumentLoaded(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.loadHandlers[token]; !exists {
		return
	}
	delete(b.loadHandlers, token)
	b.loadOrder = removeToken(b.loadOrder, token)
}

// PublishSceneChanged delivers a batch to all subscribers in order.
func (b *Bus) PublishSceneChanged(batch domain.UpdateBatch) {
	for _, h := range b.sceneSnapshot() {
		h(batch)
	}
}

// PublishDocumentLoaded notifies all subscribers that a document was loaded.
func (b *Bus) PublishDocumentLoaded() {
	b.mu.Lock()
	handlers := make([]ports.DocumentLoadedHandler, 0, len(b.loadOrder))
	for _, token := range b.loadOrder {
		handlers = append(handlers, b.loadHandlers[token])
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}

func (b *Bus) sceneSnapshot() []ports.SceneChangedHandler {
	b.mu.Lock()
	defer b.mu.Unlock()
	handlers := make([]ports.SceneChangedHandler, 0, len(b.sceneOrder))
	for _, token := range b.sceneOrder {
		handlers = append(handlers, b.sceneHandlers[token])
	}
	return handlers
}

func removeToken(order []string, token string) []string {
	for i, t := range order {
		if t == token {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
