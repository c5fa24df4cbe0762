package config

// Profile defines the user-configurable settings for the HUD.
type Profile struct {
	Theme           string  `json:"theme"`
	RefreshInterval int     `json:"refresh_interval"` // In milliseconds
	MaxProcesses    int     `json:"max_processes"`
	HistoryLength   int     `json:"history_length"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	WeatherOnStart  bool    `json:"weather_on_start"`
}

// DefaultProfile returns the hardcoded default configuration.
// The default coordinates point at Tashkent.
func DefaultProfile() *Profile {
	return &Profile{
		Theme:           "neon",
		RefreshInterval: 1000,
		MaxProcesses:    500,
		HistoryLength:   256,
		Latitude:        41.29,
		Longitude:       69.23,
		WeatherOnStart:  true,
	}
}

// Validate normalizes out-of-range values back to their defaults.
func (p *Profile) Validate() error {
	def := DefaultProfile()
	if p.Theme == "" {
		p.Theme = def.Theme
	}
	if p.RefreshInterval < 100 {
		p.RefreshInterval = def.RefreshInterval
	}
	if p.MaxProcesses <= 0 {
		p.MaxProcesses = def.MaxProcesses
	}
	if p.HistoryLength <= 0 || p.HistoryLength > 4096 {
		p.HistoryLength = def.HistoryLength
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		p.Latitude = def.Latitude
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		p.Longitude = def.Longitude
	}
	return nil
}
