package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curveforge/meshsync/internal/adapters/scene"
	"github.com/curveforge/meshsync/internal/core/domain"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := scene.NewBus()

	var order []string
	bus.SubscribeSceneChanged("first", func(domain.UpdateBatch) { order = append(order, "first") })
	bus.SubscribeSceneChanged("second", func(domain.UpdateBatch) { order = append(order, "second") })

	bus.PublishSceneChanged(domain.UpdateBatch{ObjectsUpdated: true})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBusSubscriptionIsIdempotent(t *testing.T) {
	bus := scene.NewBus()

	calls := 0
	bus.SubscribeSceneChanged("engine", func(domain.UpdateBatch) { calls++ })
	// Resubscribing the same token replaces the handler.
	bus.SubscribeSceneChanged("engine", func(domain.UpdateBatch) { calls += 10 })

	bus.PublishSceneChanged(domain.UpdateBatch{ObjectsUpdated: true})
	assert.Equal(t, 10, calls)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := scene.NewBus()

	calls := 0
	bus.SubscribeSceneChanged("engine", func(domain.UpdateBatch) { calls++ })
	bus.UnsubscribeSceneChanged("engine")
	bus.UnsubscribeSceneChanged("engine")

	bus.PublishSceneChanged(domain.UpdateBatch{ObjectsUpdated: true})
	assert.Zero(t, calls)
}

func TestBusDocumentLoaded(t *testing.T) {
	bus := scene.NewBus()

	loads := 0
	bus.SubscribeDocumentLoaded("engine", func() { loads++ })
	bus.PublishDocumentLoaded()
	bus.PublishDocumentLoaded()
	assert.Equal(t, 2, loads)

	bus.UnsubscribeDocumentLoaded("engine")
	bus.PublishDocumentLoaded()
	assert.Equal(t, 2, loads)
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := scene.NewBus()
	bus.PublishSceneChanged(domain.UpdateBatch{ObjectsUpdated: true})
	bus.PublishDocumentLoaded()
}
