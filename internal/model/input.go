package model

// KeyState reports a logical key for one tick: Pressed is the edge (went down
// this tick), Held is the level.
type KeyState struct {
	Pressed bool `json:"pressed"`
	Held    bool `json:"held"`
}

// Input is the per-tick snapshot of the eight logical game keys
type Input struct {
	Left      KeyState `json:"left"`
	Right     KeyState `json:"right"`
	Up        KeyState `json:"up"` // hard drop
	Down      KeyState `json:"down"`
	RotateCW  KeyState `json:"rotate_cw"`
	RotateCCW KeyState `json:"rotate_ccw"`
	Hold      KeyState `json:"hold"`
	Pause     KeyState `json:"pause"`
}
