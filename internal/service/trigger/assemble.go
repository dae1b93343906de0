package trigger

import (
	"fmt"
	"time"

	"github.com/personalfme/groupalarm-trigger/internal/groupalarm"
)

// eventNameFormat is a wire contract with the service's display layer:
// the bracketed tag and the German "Schleife" wording must stay bit-exact.
const eventNameFormat = "[Funkmelderalarm] Schleife %s %s (%s)"

// assembly carries everything the request assembler needs.
type assembly struct {
	// Resources is the resolved resource payload.
	Resources *groupalarm.AlarmResources
	// OrganizationID scopes the alarm.
	OrganizationID int
	// Code is the selcall alert code.
	Code string
	// TimePoint is the human-readable reception time from the command line.
	TimePoint string
	// AlarmType describes the alarm kind (e.g. "Probealarm").
	AlarmType string
	// Message is the literal alarm text, empty when a template is used.
	Message string
	// TemplateID is the resolved template id, zero when a literal is used.
	TemplateID int
	// CloseEventAfter, when set, schedules the event end relative to now.
	CloseEventAfter *time.Duration
}

// assembleRequest builds the final request body. It is a pure function of
// its inputs; now is the current UTC time, injected for testability.
func assembleRequest(in *assembly, now time.Time) *groupalarm.AlarmRequest {
	request := &groupalarm.AlarmRequest{
		AlarmResources: in.Resources,
		OrganizationID: in.OrganizationID,
		StartTime:      groupalarm.ISOTime(now),
		EventName:      fmt.Sprintf(eventNameFormat, in.Code, in.TimePoint, in.AlarmType),
	}

	if in.CloseEventAfter != nil && *in.CloseEventAfter > 0 {
		request.ScheduledEndTime = groupalarm.ISOTime(now.Add(*in.CloseEventAfter))
	}

	if in.Message != "" {
		request.Message = in.Message
	} else if in.TemplateID != 0 {
		request.AlarmTemplateID = in.TemplateID
	}

	return request
}
