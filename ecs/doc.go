// Package ecs provides ECS adapters for hoverlens's hover events.
//
// [NewDonburiSink] forwards every notification the effect's input produces
// (pointer move, menu enter and leave, link enter) into a [Donburi] world as
// typed events. Subscribe to [HoverEventType] in your systems:
//
//	sink := ecs.NewDonburiSink(world)
//	effect, err := hoverlens.NewEffect(cfg, hoverlens.Options{Events: sink})
//
// Then call HoverEventType.ProcessEvents(world) from your own update.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
