package domain

import "time"

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "PENDING"
	NotificationStatusAccepted NotificationStatus = "ACCEPTED"
	NotificationStatusDeclined NotificationStatus = "DECLINED"
)

// Notification is one recipient's copy of a broadcast. Sender name and avatar
// are snapshots taken at broadcast time, so later profile edits do not rewrite
// history. Expiry is derived: a PENDING row past ExpiresOn is no longer
// actionable but stays readable.
type Notification struct {
	ID           int32              `json:"id"`
	SenderID     int32              `json:"sender_id"`
	SenderName   string             `json:"sender_name"`
	SenderAvatar string             `json:"sender_avatar"`
	RecipientID  int32              `json:"recipient_id"`
	OrgID        int32              `json:"org_id"`
	Type         string             `json:"type"`
	Message      string             `json:"message"`
	Status       NotificationStatus `json:"status"`
	IsRead       bool               `json:"is_read"`
	CreatedOn    time.Time          `json:"created_on"`
	ExpiresOn    time.Time          `json:"expires_on"`
}

// Expired reports whether the notification is past its reply window.
func (n *Notification) Expired(now time.Time) bool {
	return now.After(n.ExpiresOn)
}
