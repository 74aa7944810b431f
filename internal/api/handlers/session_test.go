package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/coachkit/draft-coach/internal/service"
	"github.com/coachkit/draft-coach/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getURL(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func createSessionHTTP(t *testing.T, ts *testutil.TestServer) service.SessionView {
	t.Helper()

	resp := postJSON(t, ts.URL()+"/api/v1/sessions", testutil.SessionInput())
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var view service.SessionView
	testutil.AssertJSONResponse(t, resp, &view)
	return view
}

func TestSessionHandler_CreateAndGet(t *testing.T) {
	ts := testutil.NewTestServer(t)

	view := createSessionHTTP(t, ts)
	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, "Blue Demo", view.Blue.Name)
	assert.Equal(t, 0, view.Cursor)
	require.NotNil(t, view.CurrentStep)

	resp := getURL(t, fmt.Sprintf("%s/api/v1/sessions/%s", ts.URL(), view.ID))
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var got service.SessionView
	testutil.AssertJSONResponse(t, resp, &got)
	assert.Equal(t, view.ID, got.ID)
}

func TestSessionHandler_GetUnknownSession(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getURL(t, fmt.Sprintf("%s/api/v1/sessions/%s", ts.URL(), uuid.New()))
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Session not found")
}

func TestSessionHandler_InvalidSessionID(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getURL(t, ts.URL()+"/api/v1/sessions/not-a-uuid")
	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid session ID")
}

func TestSessionHandler_ApplyAction(t *testing.T) {
	ts := testutil.NewTestServer(t)
	view := createSessionHTTP(t, ts)

	resp := postJSON(t, fmt.Sprintf("%s/api/v1/sessions/%s/actions", ts.URL(), view.ID), map[string]string{"championId": "Ahri"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var after service.SessionView
	testutil.AssertJSONResponse(t, resp, &after)
	assert.Equal(t, 1, after.Cursor)
	testutil.AssertContainsChampion(t, after.Blue.Bans, "Ahri")
}

func TestSessionHandler_ApplyUnknownChampion(t *testing.T) {
	ts := testutil.NewTestServer(t)
	view := createSessionHTTP(t, ts)

	resp := postJSON(t, fmt.Sprintf("%s/api/v1/sessions/%s/actions", ts.URL(), view.ID), map[string]string{"championId": "Nope"})
	testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)
}

func TestSessionHandler_ApplyTakenChampion(t *testing.T) {
	ts := testutil.NewTestServer(t)
	view := createSessionHTTP(t, ts)
	url := fmt.Sprintf("%s/api/v1/sessions/%s/actions", ts.URL(), view.ID)

	resp := postJSON(t, url, map[string]string{"championId": "Ahri"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = postJSON(t, url, map[string]string{"championId": "Ahri"})
	testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)
}

func TestSessionHandler_UndoAndReset(t *testing.T) {
	ts := testutil.NewTestServer(t)
	view := createSessionHTTP(t, ts)
	base := fmt.Sprintf("%s/api/v1/sessions/%s", ts.URL(), view.ID)

	postJSON(t, base+"/actions", map[string]string{"championId": "Ahri"})
	postJSON(t, base+"/actions", map[string]string{"championId": "Zed"})

	resp := postJSON(t, base+"/undo", nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var after service.SessionView
	testutil.AssertJSONResponse(t, resp, &after)
	assert.Equal(t, 1, after.Cursor)
	testutil.AssertNotContainsChampion(t, after.Red.Bans, "Zed")

	resp = postJSON(t, base+"/reset", nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertJSONResponse(t, resp, &after)
	assert.Equal(t, 0, after.Cursor)
	testutil.AssertNotContainsChampion(t, after.Blue.Bans, "Ahri")
}

func TestSessionHandler_Recommendations(t *testing.T) {
	ts := testutil.NewTestServer(t)
	view := createSessionHTTP(t, ts)

	resp := getURL(t, fmt.Sprintf("%s/api/v1/sessions/%s/recommendations", ts.URL(), view.ID))
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var set service.RecommendationSet
	testutil.AssertJSONResponse(t, resp, &set)
	assert.NotEmpty(t, set.Recommendations)
	assert.NotEmpty(t, set.AnalysisText)
	require.NotNil(t, set.BlueAnalysis)
}

func TestSessionHandler_Analysis(t *testing.T) {
	ts := testutil.NewTestServer(t)
	view := createSessionHTTP(t, ts)

	resp := getURL(t, fmt.Sprintf("%s/api/v1/sessions/%s/analysis", ts.URL(), view.ID))
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var analysis struct {
		Blue *json.RawMessage `json:"blue"`
		Red  *json.RawMessage `json:"red"`
	}
	testutil.AssertJSONResponse(t, resp, &analysis)
	assert.NotNil(t, analysis.Blue)
	assert.NotNil(t, analysis.Red)
}

func TestSessionHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)
	view := createSessionHTTP(t, ts)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete,
		fmt.Sprintf("%s/api/v1/sessions/%s", ts.URL(), view.ID), nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)

	getResp := getURL(t, fmt.Sprintf("%s/api/v1/sessions/%s", ts.URL(), view.ID))
	testutil.AssertStatusCode(t, getResp, http.StatusNotFound)
}

func TestChampionHandler_GetAll(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getURL(t, ts.URL()+"/api/v1/champions")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var body struct {
		Champions []struct {
			ID    string   `json:"id"`
			Name  string   `json:"name"`
			Roles []string `json:"roles"`
		} `json:"champions"`
	}
	testutil.AssertJSONResponse(t, resp, &body)
	require.NotEmpty(t, body.Champions)
	for _, c := range body.Champions {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Roles)
	}
}

func TestChampionHandler_GetByID(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getURL(t, ts.URL()+"/api/v1/champions/Jinx")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var champ struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	testutil.AssertJSONResponse(t, resp, &champ)
	assert.Equal(t, "Jinx", champ.ID)

	resp = getURL(t, ts.URL()+"/api/v1/champions/Nobody")
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestChampionHandler_GetByKey(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getURL(t, ts.URL()+"/api/v1/champions/key/222")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var champ struct {
		ID  string `json:"id"`
		Key string `json:"key"`
	}
	testutil.AssertJSONResponse(t, resp, &champ)
	assert.Equal(t, "Jinx", champ.ID)
	assert.Equal(t, "222", champ.Key)

	resp = getURL(t, ts.URL()+"/api/v1/champions/key/9999")
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestHealthEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getURL(t, ts.URL()+"/health")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
}
