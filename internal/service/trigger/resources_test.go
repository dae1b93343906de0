package trigger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/personalfme/groupalarm-trigger/internal/config"
	"github.com/personalfme/groupalarm-trigger/internal/domain/alarm"
	"github.com/personalfme/groupalarm-trigger/internal/groupalarm"
)

// fakeResolver is a minimal in-memory Resolver implementation for tests.
type fakeResolver struct {
	// ids maps names to the ids to return, shared across endpoint kinds.
	ids map[string]int
	// err is returned from every call when set.
	err error
	// calls records the endpoint kinds that were queried.
	calls []groupalarm.EndpointKind
}

// ResolveIDs returns ids in input order, mirroring the real resolver contract.
func (f *fakeResolver) ResolveIDs(_ context.Context, kind groupalarm.EndpointKind, names []string) ([]int, error) {
	f.calls = append(f.calls, kind)

	if f.err != nil {
		return nil, f.err
	}

	ids := make([]int, len(names))
	for i, name := range names {
		ids[i] = f.ids[name]
	}

	return ids, nil
}

// payloadKeys marshals the resource payload and returns its top-level keys.
func payloadKeys(t *testing.T, resources *groupalarm.AlarmResources) []string {
	t.Helper()

	data, err := json.Marshal(resources)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	keys := make([]string, 0, len(decoded))
	for key := range decoded {
		keys = append(keys, key)
	}

	return keys
}

// TestSelectResources_AllUsers needs no resolution and yields only the allUsers key.
func TestSelectResources_AllUsers(t *testing.T) {
	t.Parallel()

	resolver := new(fakeResolver)

	resources, err := selectResources(context.Background(), resolver,
		alarm.ResourceSpec{Kind: alarm.ResourceAllUsers})

	require.NoError(t, err)
	require.True(t, resources.AllUsers)
	require.Empty(t, resolver.calls)
	require.Equal(t, []string{"allUsers"}, payloadKeys(t, resources))
}

// TestSelectResources_Labels preserves input order and pairs each amount with
// the id resolved for the same positional name.
func TestSelectResources_Labels(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{ids: map[string]int{"driver": 11, "squad": 22, "chief": 33}}

	resources, err := selectResources(context.Background(), resolver, alarm.ResourceSpec{
		Kind: alarm.ResourceLabels,
		Labels: []alarm.LabelCount{
			{Name: "squad", Amount: 5},
			{Name: "driver", Amount: 2},
			{Name: "chief", Amount: 1},
		},
	})

	require.NoError(t, err)
	require.Equal(t, []groupalarm.LabelResource{
		{Amount: 5, LabelID: 22},
		{Amount: 2, LabelID: 11},
		{Amount: 1, LabelID: 33},
	}, resources.Labels)
	require.Equal(t, []groupalarm.EndpointKind{groupalarm.KindLabels}, resolver.calls)
	require.Equal(t, []string{"labels"}, payloadKeys(t, resources))
}

// TestSelectResources_NameSets covers the units, users and scenarios variants.
func TestSelectResources_NameSets(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{ids: map[string]int{"one": 1, "two": 2}}

	for _, tc := range []struct {
		spec alarm.ResourceSpec
		kind groupalarm.EndpointKind
		key  string
	}{
		{alarm.ResourceSpec{Kind: alarm.ResourceUnits, Units: []string{"one", "two"}}, groupalarm.KindUnits, "units"},
		{alarm.ResourceSpec{Kind: alarm.ResourceUsers, Users: []string{"two"}}, groupalarm.KindUsers, "users"},
		{alarm.ResourceSpec{Kind: alarm.ResourceScenarios, Scenarios: []string{"one"}}, groupalarm.KindScenarios, "scenarios"},
	} {
		resources, err := selectResources(context.Background(), resolver, tc.spec)

		require.NoError(t, err)
		require.Equal(t, []string{tc.key}, payloadKeys(t, resources))
	}

	require.Equal(t, []groupalarm.EndpointKind{
		groupalarm.KindUnits,
		groupalarm.KindUsers,
		groupalarm.KindScenarios,
	}, resolver.calls)
}

// TestSelectResources_NoVariant reports the defensive logic error for a spec
// with no populated variant.
func TestSelectResources_NoVariant(t *testing.T) {
	t.Parallel()

	_, err := selectResources(context.Background(), new(fakeResolver), alarm.ResourceSpec{})

	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, config.KindLogic, cfgErr.Kind)
	require.Contains(t, err.Error(), "no alarm resources")
}

// TestSelectResources_ResolverFailure propagates resolution failures unchanged.
func TestSelectResources_ResolverFailure(t *testing.T) {
	t.Parallel()

	wantErr := &groupalarm.ResolutionError{Kind: groupalarm.KindUnits, Missing: []string{"ghost"}}
	resolver := &fakeResolver{err: wantErr}

	_, err := selectResources(context.Background(), resolver,
		alarm.ResourceSpec{Kind: alarm.ResourceUnits, Units: []string{"ghost"}})

	require.ErrorIs(t, err, wantErr)
}
