package notification

import "github.com/radityaputra/intranet-portal/internal"

// BroadcastAlertDTO is the admin payload for a critical alert fanout.
// TargetLevel is the least privileged level still included: every user
// with level <= target_level receives the alert.
type BroadcastAlertDTO struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	TargetLevel *int   `json:"target_level"`
}

func (d BroadcastAlertDTO) Validate() error {
	var missing []string
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Message == "" {
		missing = append(missing, "message")
	}
	if d.TargetLevel == nil {
		missing = append(missing, "target_level")
	}
	if len(missing) > 0 {
		return internal.NewMissingFieldsError(missing...)
	}
	return nil
}

// BroadcastResult reports how many users were notified.
type BroadcastResult struct {
	Message       string `json:"message"`
	NotifiedCount int    `json:"notifiedCount"`
}
