// Package ecs bridges hoverlens events into ECS worlds.
package ecs

import (
	"github.com/phanxgames/hoverlens"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HoverEventType is the Donburi event type for hoverlens hover events.
// Subscribe to it to react to pointer movement, menu hover and link entry.
var HoverEventType = events.NewEventType[hoverlens.HoverEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes to HoverEventType in
// world. Events are queued until ProcessEvents runs.
func NewDonburiSink(world donburi.World) hoverlens.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event hoverlens.HoverEvent) {
	HoverEventType.Publish(s.world, event)
}
