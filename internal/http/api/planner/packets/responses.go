package packets

import "github.com/Onimuxha/wexly/internal/model"

// DayResponse is one slot of the week view. Schedule is nil for days the
// user has never generated or touched.
type DayResponse struct {
	Date     string             `json:"date"`
	Label    model.DayLabel     `json:"label"`
	IsToday  bool               `json:"is_today"`
	Schedule *model.DaySchedule `json:"schedule"`
}

type WeekResponse struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Days      []DayResponse `json:"days"`
}

type ReminderResponse struct {
	ReminderID string `json:"reminder_id"`
	FireAt     string `json:"fire_at"`
	DelayMs    int64  `json:"delay_ms"`
}

type LanguageResponse struct {
	Language string `json:"language"`
}
