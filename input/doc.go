// Package input normalises raw controls into a device-independent [0, 1]
// domain and derives per-tick signals from a bounded history of samples.
//
// The pipeline has four stages:
//
//   - A [Channel] maps one raw button, axis or hat component to [0, 1].
//   - A [Device] reads its channels from a [Source] in registration order and
//     produces a [Snapshot] per poll.
//   - A [History] keeps the last few snapshots and answers edge queries
//     (pressed, released, buffered presses, smashes).
//   - A [Controller] binds the friendly names of a [Layout] (and every layout
//     it extends) to channel indices in one History.
//
// Typical setup:
//
//	dev, err := input.NewGamecubeDevice(sys, 0)
//	if err != nil { ... }
//	pad, err := input.NewController(input.GamecubeLayout, dev, input.NewHistory(0))
//	if err != nil { ... }
//
//	// once per tick, before the entity tree updates:
//	pad.Update()
//	if pad.Get("A").IsPressed() { ... }
package input
