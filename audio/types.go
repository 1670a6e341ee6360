package audio

import "time"

// Cue is a short sound tied to a game event
type Cue int

const (
	CueSelect Cue = iota // Marker picked up
	CueMove              // Marker placed
	CueReject            // Enter had no effect
	cueCount
)

const (
	// defaultSampleRate matches common output devices
	defaultSampleRate = 48000

	SelectSoundDuration = 90 * time.Millisecond
	SelectSoundAttack   = 5 * time.Millisecond
	SelectSoundRelease  = 60 * time.Millisecond

	MoveSoundNote1Duration = 70 * time.Millisecond
	MoveSoundNote2Duration = 160 * time.Millisecond
	MoveSoundAttack        = 5 * time.Millisecond
	MoveSoundNote1Release  = 30 * time.Millisecond
	MoveSoundNote2Release  = 120 * time.Millisecond

	RejectSoundDuration = 120 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 40 * time.Millisecond
)
