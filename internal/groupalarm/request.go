package groupalarm

import "time"

// AlarmRequest is the wire-level body of POST /alarm. Message and
// AlarmTemplateID are mutually exclusive; at most one is serialized.
type AlarmRequest struct {
	// AlarmResources selects who is alerted.
	AlarmResources *AlarmResources `json:"alarmResources"`
	// OrganizationID scopes the alarm.
	OrganizationID int `json:"organizationID"`
	// StartTime is the alarm start, ISO-8601 UTC with a Z suffix.
	StartTime string `json:"startTime"`
	// ScheduledEndTime, when present, closes the alarm event at that time.
	ScheduledEndTime string `json:"scheduledEndTime,omitempty"`
	// EventName is the display name shown by the service.
	EventName string `json:"eventName"`
	// Message is the literal alarm text.
	Message string `json:"message,omitempty"`
	// AlarmTemplateID references a remote message template.
	AlarmTemplateID int `json:"alarmTemplateID,omitempty"`
}

// AlarmResources is the resolved resource payload. Exactly one field is
// populated; omitempty keeps the serialized form down to that single key.
type AlarmResources struct {
	AllUsers  bool            `json:"allUsers,omitempty"`
	Labels    []LabelResource `json:"labels,omitempty"`
	Units     []int           `json:"units,omitempty"`
	Users     []int           `json:"users,omitempty"`
	Scenarios []int           `json:"scenarios,omitempty"`
}

// LabelResource pairs a resolved label id with the number of users to alert.
type LabelResource struct {
	Amount  int `json:"amount"`
	LabelID int `json:"labelID"`
}

// ISOTime renders a time point the way the API expects it:
// ISO-8601 in UTC with a Z suffix.
func ISOTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + "Z"
}
