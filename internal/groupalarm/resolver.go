package groupalarm

import (
	"context"
	"fmt"
	"strconv"
)

// EndpointKind names a catalog endpoint of the GroupAlarm API.
type EndpointKind string

const (
	// KindUnits is the units catalog.
	KindUnits EndpointKind = "units"
	// KindLabels is the labels catalog.
	KindLabels EndpointKind = "labels"
	// KindUsers is the users catalog.
	KindUsers EndpointKind = "users"
	// KindScenarios is the scenarios catalog.
	KindScenarios EndpointKind = "scenarios"
	// KindTemplates is the alarm templates catalog. Unlike the other
	// catalogs it takes the organization via the "organization_id" query key.
	KindTemplates EndpointKind = "alarms/templates"
)

// organizationParam returns the query key carrying the organization id.
func (k EndpointKind) organizationParam() string {
	if k == KindTemplates {
		return "organization_id"
	}

	return "organization"
}

// Entity is one catalog entry of a lookup endpoint.
type Entity struct {
	// ID is the remote numeric identifier.
	ID int `json:"id"`
	// Name is the human-readable name the configuration refers to.
	Name string `json:"name"`
}

// ResolveIDs maps symbolic names to remote numeric ids. It fetches the full
// catalog of the endpoint kind once and filters client-side; there is no
// per-name query. The returned ids keep the order of the input names. Names
// absent from the catalog fail the call with a ResolutionError naming every
// missing entity. An empty input resolves to an empty output without a
// network call.
func (c *Client) ResolveIDs(ctx context.Context, kind EndpointKind, names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var catalog []Entity

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam(kind.organizationParam(), strconv.Itoa(c.organizationID)).
		SetResult(&catalog).
		Get("/" + string(kind))
	if err != nil {
		return nil, fmt.Errorf("fetch %s catalog: %w", kind, err)
	}

	logServiceStatus(ctx, resp)

	if resp.IsError() {
		return nil, &RemoteError{
			Op:         fmt.Sprintf("fetch %s catalog", kind),
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
		}
	}

	idsByName := make(map[string]int, len(catalog))
	for _, entity := range catalog {
		idsByName[entity.Name] = entity.ID
	}

	ids := make([]int, 0, len(names))

	var missing []string

	for _, name := range names {
		id, ok := idsByName[name]
		if !ok {
			missing = append(missing, name)
			continue
		}

		ids = append(ids, id)
	}

	if len(missing) > 0 {
		return nil, &ResolutionError{
			Kind:           kind,
			OrganizationID: c.organizationID,
			Missing:        missing,
		}
	}

	return ids, nil
}

// ResolveTemplateID resolves a single alarm template name to its id.
func (c *Client) ResolveTemplateID(ctx context.Context, name string) (int, error) {
	ids, err := c.ResolveIDs(ctx, KindTemplates, []string{name})
	if err != nil {
		return 0, err
	}

	return ids[0], nil
}
