package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the request body for saving profile settings
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	LastTrack   *int   `json:"last_track,omitempty"`
	GameMode    string `json:"game_mode,omitempty"`
}

// CreateSessionRequest is the request body for starting a game session
type CreateSessionRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
	GameMode   string `json:"game_mode,omitempty"`
	Track      int    `json:"track,omitempty"`
}

// Audio control actions
const (
	AudioActionToggleMute = "toggle_mute"
	AudioActionNextTrack  = "next_track"
)

// SessionAudioRequest is the request body for in-game audio controls
type SessionAudioRequest struct {
	Action string `json:"action"`
}
