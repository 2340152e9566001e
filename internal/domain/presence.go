package domain

import "time"

type StatusTag string

const (
	StatusAvailable    StatusTag = "AVAILABLE"
	StatusFocused      StatusTag = "FOCUSED"
	StatusBusy         StatusTag = "BUSY"
	StatusDoNotDisturb StatusTag = "DO_NOT_DISTURB"
	StatusAway         StatusTag = "AWAY"
	StatusLunch        StatusTag = "LUNCH"
	StatusInMeeting    StatusTag = "IN_MEETING"
	StatusOffline      StatusTag = "OFFLINE"
	StatusCustom1      StatusTag = "CUSTOM_1"
	StatusCustom2      StatusTag = "CUSTOM_2"
)

var statusTags = map[StatusTag]bool{
	StatusAvailable:    true,
	StatusFocused:      true,
	StatusBusy:         true,
	StatusDoNotDisturb: true,
	StatusAway:         true,
	StatusLunch:        true,
	StatusInMeeting:    true,
	StatusOffline:      true,
	StatusCustom1:      true,
	StatusCustom2:      true,
}

func (t StatusTag) Valid() bool {
	return statusTags[t]
}

// PresenceStatus is one row per user. Status is a property of the user, not of
// a membership, so a user active in two organizations shows the same status in
// both.
type PresenceStatus struct {
	UserID       int32     `json:"user_id"`
	Status       StatusTag `json:"status"`
	Custom1Label string    `json:"custom1_label"`
	Custom1Icon  string    `json:"custom1_icon"`
	Custom2Label string    `json:"custom2_label"`
	Custom2Icon  string    `json:"custom2_icon"`
	UpdatedOn    time.Time `json:"updated_on"`
}
