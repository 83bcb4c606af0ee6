// Package tracksel defines the track-store contract consumed by the
// RTP session and packetizer. The track store itself — how tracks are
// discovered, stored, and released — lives outside this module
// (spec.md §1); only the interface it must satisfy lives here.
package tracksel

// Track is the subset of a media track's properties the packetizer
// needs to fill an RTP header.
type Track interface {
	PayloadType() uint8
	ClockRate() uint32
}

// Selector exposes the currently active track of a session and
// releases track references on teardown.
type Selector interface {
	// SelectedTrack returns the currently active track.
	SelectedTrack() Track

	// CloseTracks releases this selector's track references. Safe to
	// call exactly once, during session destruction.
	CloseTracks()
}
