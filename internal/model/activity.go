package model

// Activity is a reusable task definition from the user's catalog.
// Names are bilingual (English / Khmer), duration is nominal minutes.
type Activity struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	NameKh    string `db:"name_kh" json:"name_kh"`
	Duration  int    `db:"duration" json:"duration"`
	Completed bool   `db:"completed" json:"completed"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

// ScheduledActivity is an Activity placed on a concrete day. StartTime and
// EndTime are display-form time strings produced by the schedule codec;
// EndTime is always StartTime + Duration, never set independently.
type ScheduledActivity struct {
	Activity
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DaySchedule is one calendar day of the week plan. Date is the canonical
// day key (YYYY-MM-DD). Ordering of Activities is display/execution order.
type DaySchedule struct {
	Date       string              `json:"date"`
	IsDayOff   bool                `json:"is_day_off"`
	Activities []ScheduledActivity `json:"activities"`
}
