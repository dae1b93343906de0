package groupalarm

import (
	"fmt"
	"strings"
)

// ResolutionError reports symbolic names that are not present in the remote
// catalog. Missing carries every unresolved name, not just the first.
type ResolutionError struct {
	// Kind is the catalog endpoint that was queried.
	Kind EndpointKind
	// OrganizationID is the organization whose catalog was searched.
	OrganizationID int
	// Missing are the requested names absent from the catalog.
	Missing []string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("did not find the following *%s* in the GroupAlarm organization %d: %s",
		e.Kind, e.OrganizationID, strings.Join(e.Missing, ", "))
}

// RemoteError reports a non-success status from the GroupAlarm API. It is
// raised even when the body carried a (separately logged) diagnostic.
type RemoteError struct {
	// Op names the failing operation.
	Op string
	// StatusCode is the numeric HTTP status.
	StatusCode int
	// Status is the full HTTP status line.
	Status string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: GroupAlarm.com responded with %s", e.Op, e.Status)
}
