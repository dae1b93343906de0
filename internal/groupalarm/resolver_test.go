package groupalarm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// catalogServer fakes a GroupAlarm catalog endpoint. It records the request
// path and query and serves the provided catalog.
type catalogServer struct {
	*httptest.Server

	// requests counts how many lookups were issued.
	requests int
	// lastPath is the path of the most recent request.
	lastPath string
	// lastQuery is the raw query of the most recent request.
	lastQuery string
}

func newCatalogServer(t *testing.T, catalog []Entity) *catalogServer {
	t.Helper()

	server := new(catalogServer)
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.requests++
		server.lastPath = r.URL.Path
		server.lastQuery = r.URL.RawQuery

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(catalog)
	}))
	t.Cleanup(server.Close)

	return server
}

func newTestClient(baseURL string) *Client {
	return New(42, "test-token", WithBaseURL(baseURL))
}

// TestResolveIDs_ReturnsIDsInInputOrder resolves a subset of the catalog and
// expects ids ordered like the input names, not like the catalog.
func TestResolveIDs_ReturnsIDsInInputOrder(t *testing.T) {
	t.Parallel()

	server := newCatalogServer(t, []Entity{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "second"},
		{ID: 3, Name: "third"},
	})

	ids, err := newTestClient(server.URL).ResolveIDs(context.Background(), KindUnits, []string{"third", "first"})

	require.NoError(t, err)
	require.Equal(t, []int{3, 1}, ids)
	require.Equal(t, "/units", server.lastPath)
	require.Equal(t, "organization=42", server.lastQuery)
}

// TestResolveIDs_MissingNames fails with a ResolutionError naming every
// missing entity, independent of order.
func TestResolveIDs_MissingNames(t *testing.T) {
	t.Parallel()

	server := newCatalogServer(t, []Entity{{ID: 1, Name: "known"}})

	_, err := newTestClient(server.URL).ResolveIDs(context.Background(), KindScenarios,
		[]string{"ghost", "known", "phantom"})

	var resolution *ResolutionError
	require.ErrorAs(t, err, &resolution)
	require.Equal(t, KindScenarios, resolution.Kind)
	require.ElementsMatch(t, []string{"ghost", "phantom"}, resolution.Missing)
	require.Contains(t, err.Error(), "ghost")
	require.Contains(t, err.Error(), "phantom")
}

// TestResolveIDs_TemplatesQueryKey uses the organization_id query key for the
// templates endpoint.
func TestResolveIDs_TemplatesQueryKey(t *testing.T) {
	t.Parallel()

	server := newCatalogServer(t, []Entity{{ID: 9, Name: "standard"}})

	id, err := newTestClient(server.URL).ResolveTemplateID(context.Background(), "standard")

	require.NoError(t, err)
	require.Equal(t, 9, id)
	require.Equal(t, "/alarms/templates", server.lastPath)
	require.Equal(t, "organization_id=42", server.lastQuery)
}

// TestResolveIDs_EmptyInput resolves to an empty output without any lookup.
func TestResolveIDs_EmptyInput(t *testing.T) {
	t.Parallel()

	server := newCatalogServer(t, nil)

	ids, err := newTestClient(server.URL).ResolveIDs(context.Background(), KindUsers, nil)

	require.NoError(t, err)
	require.Empty(t, ids)
	require.Zero(t, server.requests)
}

// TestResolveIDs_RemoteFailure surfaces a non-success status as a RemoteError.
func TestResolveIDs_RemoteFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server.URL).ResolveIDs(context.Background(), KindLabels, []string{"driver"})

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, http.StatusInternalServerError, remote.StatusCode)
}
