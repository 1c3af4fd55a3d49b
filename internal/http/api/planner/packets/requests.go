package packets

// ActivityPayload is one catalog entry in a wholesale replace.
type ActivityPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	NameKh    string `json:"name_kh"`
	Duration  int    `json:"duration" binding:"required,gt=0"`
	Completed bool   `json:"completed"`
}

type ReplaceActivitiesRequest struct {
	Activities []ActivityPayload `json:"activities" binding:"required,dive"`
}

type CreateActivityRequest struct {
	Name     string `json:"name" binding:"required"`
	NameKh   string `json:"name_kh"`
	Duration int    `json:"duration" binding:"required,gt=0"`
}

type UpdateActivityRequest struct {
	Name      *string `json:"name"`
	NameKh    *string `json:"name_kh"`
	Duration  *int    `json:"duration" binding:"omitempty,gt=0"`
	Completed *bool   `json:"completed"`
}

type WeekQuery struct {
	Date string `form:"date"` // optional day key; defaults to today
}

type ReorderActivitiesRequest struct {
	ActivityIDs []string `json:"activity_ids" binding:"required,min=1"`
}

type SetStartTimeRequest struct {
	StartTime string `json:"start_time" binding:"required"`
}

type ArmReminderRequest struct {
	Date       string `json:"date" binding:"required"`
	ActivityID string `json:"activity_id" binding:"required"`
}

type UpdateLanguageRequest struct {
	Language string `json:"language" binding:"required,oneof=en kh"`
}
