package response_models

type TimerSettingsResponse struct {
	FocusMinutes      int  `json:"focus_minutes"`
	ShortBreakMinutes int  `json:"short_break_minutes"`
	LongBreakMinutes  int  `json:"long_break_minutes"`
	LongBreakEvery    int  `json:"long_break_every"`
	SoundEnabled      bool `json:"sound_enabled"`
}
