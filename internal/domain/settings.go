package domain

// Default settings values
const (
	DefaultLinesPerWord  = 3
	DefaultExcludeRecent = 0
)

// Settings are the persisted, process-wide worksheet preferences
type Settings struct {
	LinesPerWord    int  `json:"linesPerWord" validate:"gte=1"`
	ExcludeRecent   int  `json:"excludeRecent" validate:"gte=0"`
	IncludeNameDate bool `json:"includeNameDate"`
}

// DefaultSettings returns the settings used before any user override
func DefaultSettings() Settings {
	return Settings{
		LinesPerWord:  DefaultLinesPerWord,
		ExcludeRecent: DefaultExcludeRecent,
	}
}

// SettingsOverride holds the fields present in a stored settings blob.
// Absent fields stay nil so defaults show through.
type SettingsOverride struct {
	LinesPerWord    *int  `json:"linesPerWord,omitempty"`
	ExcludeRecent   *int  `json:"excludeRecent,omitempty"`
	IncludeNameDate *bool `json:"includeNameDate,omitempty"`
}

// Merge applies the override on top of s
func (s Settings) Merge(o SettingsOverride) Settings {
	if o.LinesPerWord != nil {
		s.LinesPerWord = *o.LinesPerWord
	}
	if o.ExcludeRecent != nil {
		s.ExcludeRecent = *o.ExcludeRecent
	}
	if o.IncludeNameDate != nil {
		s.IncludeNameDate = *o.IncludeNameDate
	}
	return s.Clamp()
}

// Clamp forces out-of-range values back into their valid range
func (s Settings) Clamp() Settings {
	s.LinesPerWord = max(1, s.LinesPerWord)
	s.ExcludeRecent = max(0, s.ExcludeRecent)
	return s
}
