// SPDX-License-Identifier: EPL-2.0

// Package scene holds the validated, versioned description of an acoustic
// scene: a room, an ordered list of sound sources and an ordered list of
// microphones.
//
// # Ownership and Lifecycle
//
// A Config exclusively owns its sources and microphones by value; nothing
// aliases into it. Once a simulation run starts the Config is treated as an
// immutable snapshot, so edits never race a running simulation.
//
// # Validation
//
// Config.Validate applies every construction invariant: positive room
// dimensions, non-negative RT60 and duration, unique names, positions within
// the room bounds, positive sensitivity, and per-variant signal parameter
// checks. Load runs exactly the same validation after decoding, so a scene
// is either fully usable or rejected with an error naming the failing field.
//
// # Persistence
//
// Scenes persist as human-diffable indented JSON with the fields
// config_version, room_dim, rt60, duration, sources_data and mics_data.
// File names conventionally use the Extension suffix.
//
// Loading is deliberately forgiving about versions: a missing or unknown
// config_version reads as the oldest supported schema with a warning, never
// a rejection, so documents keep loading across releases. Missing optional
// fields come from the named default constants in this package rather than
// scattered literals. If a document has no sources or no microphones, one
// DefaultSource or DefaultMic is appended so the scene is immediately
// simulatable; the LoadReport records every such backfill:
//
//	cfg, report, err := scene.LoadFile("studio.json")
//	if report.BackfilledMic {
//	    // the document had an empty mics_data list
//	}
//
// Saving always writes the current schema version and every field
// explicitly, which makes a save/load/save round trip byte-stable.
package scene
