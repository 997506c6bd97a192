package request_models

type UpdateTimerSettingsRequest struct {
	FocusMinutes      int  `json:"focus_minutes" binding:"required,min=1,max=180"`
	ShortBreakMinutes int  `json:"short_break_minutes" binding:"required,min=1,max=60"`
	LongBreakMinutes  int  `json:"long_break_minutes" binding:"required,min=1,max=120"`
	LongBreakEvery    int  `json:"long_break_every" binding:"required,min=1,max=12"`
	SoundEnabled      bool `json:"sound_enabled"`
}
