package ports

import "github.com/curveforge/meshsync/internal/core/domain"

// SceneChangedHandler receives scene change notification batches.
type SceneChangedHandler func(batch domain.UpdateBatch)

// DocumentLoadedHandler is invoked after the host loads a document.
type DocumentLoadedHandler func()

// EventBus is the host event feed. Subscriptions are keyed by a caller-chosen
// token and are idempotent: subscribing the same token twice replaces the
// handler instead of double-registering it.
//
//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks
type EventBus interface {
	SubscribeSceneChanged(token string, h SceneChangedHandler)
	UnsubscribeSceneChanged(token string)

	SubscribeDocumentLoaded(token string, h DocumentLoadedHandler)
	UnsubscribeDocumentLoaded(token string)

	// PublishSceneChanged delivers a batch to subscribers in subscription order.
	PublishSceneChanged(batch domain.UpdateBatch)

	// PublishDocumentLoaded notifies subscribers that a document was loaded.
	PublishDocumentLoaded()
}
