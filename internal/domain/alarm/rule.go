package alarm

import "time"

// CodeLength is the fixed length of a selcall alert code (e.g. "09234").
const CodeLength = 5

// ResourceKind selects which variant of a ResourceSpec is populated.
type ResourceKind int

const (
	// ResourceUnknown marks a spec with no populated variant.
	ResourceUnknown ResourceKind = iota
	// ResourceAllUsers alerts every user of the organization.
	ResourceAllUsers
	// ResourceLabels alerts a number of users per label.
	ResourceLabels
	// ResourceUnits alerts the named units.
	ResourceUnits
	// ResourceUsers alerts the named users.
	ResourceUsers
	// ResourceScenarios alerts the named scenarios.
	ResourceScenarios
)

// LabelCount pairs a label name with the number of tagged users to alert.
type LabelCount struct {
	// Name is the label as configured in the organization.
	Name string
	// Amount is how many users carrying the label should be alerted.
	Amount int
}

// ResourceSpec is a tagged union over the mutually exclusive ways a rule
// can target recipients. Exactly one variant is populated, selected by Kind.
type ResourceSpec struct {
	// Kind selects the populated variant.
	Kind ResourceKind
	// Labels holds label/amount pairs. Order is significant: resolved ids
	// must stay paired with their amounts by position.
	Labels []LabelCount
	// Units holds unit names.
	Units []string
	// Users holds user names.
	Users []string
	// Scenarios holds scenario names.
	Scenarios []string
}

// MessageKind selects which variant of a MessageSpec is populated.
type MessageKind int

const (
	// MessageUnknown marks a spec with no populated variant.
	MessageUnknown MessageKind = iota
	// MessageLiteral carries the alarm text verbatim.
	MessageLiteral
	// MessageTemplate references a message template stored remotely.
	MessageTemplate
)

// MessageSpec is a tagged union carrying either a literal alarm text or the
// name of a remote message template, never both.
type MessageSpec struct {
	// Kind selects the populated variant.
	Kind MessageKind
	// Text is the literal alarm message (MessageLiteral).
	Text string
	// TemplateName names the remote template (MessageTemplate).
	TemplateName string
}

// Rule describes how one alert code is turned into an alarm.
type Rule struct {
	// Resources describes who is alerted.
	Resources ResourceSpec
	// Message describes what they are told.
	Message MessageSpec
	// CloseEventAfter, when set, schedules the alarm event to end this long
	// after it was started.
	CloseEventAfter *time.Duration
}
