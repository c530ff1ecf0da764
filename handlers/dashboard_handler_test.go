package handlers

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legislators_dashboard/config"
	"legislators_dashboard/models"
	"legislators_dashboard/render"
	"legislators_dashboard/store"
)

func testStore() *store.Store {
	return store.New(
		models.CountRecords{"Austria": {120, 63}, "Brazil": {450, 77}, "Chile": {100, 50}},
		models.CountRecords{"Austria": {90, 2, 0, 0, 1, 5}, "Brazil": {300, 0, 0, 1, 2, 10}, "Chile": {80, 1, 0, 0, 0, 3}},
		models.CountRecords{"Austria": {40, 80, 10, 30, 100, 5}},
		&models.TrafficTable{
			Years:   []int{2018, 2019, 2020},
			Volumes: map[string][]float64{"Austria": {1200, 1500, 1800}, "Chile": {10, 20, 30}},
		},
	)
}

func newTestServer(t *testing.T, p Presentation) (*httptest.Server, *http.Client) {
	t.Helper()
	sessions := NewSessions(config.NewSessionCache(time.Minute))
	d, err := NewDashboard(testStore(), sessions, p, render.Size{Width: 320, Height: 200})
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(d, RouterOptions{AllowedOrigins: []string{"http://localhost:3000"}}))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestDashboardDefaultPage(t *testing.T) {
	srv, client := newTestServer(t, plainPresentation())

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="Austria">Austria</option>`)
	assert.Contains(t, body, `value="Male" checked`)
	assert.Contains(t, body, "Select Country")
	assert.NotContains(t, body, `id="panel-`)

	u, _ := url.Parse(srv.URL)
	require.Len(t, client.Jar.Cookies(u), 1)
	assert.Equal(t, sessionCookie, client.Jar.Cookies(u)[0].Name)
}

func TestDashboardSelectionFlow(t *testing.T) {
	srv, client := newTestServer(t, plainPresentation())

	form := url.Values{
		"entity":       {"Brazil", "Austria", "Atlantis"},
		"gender":       {"Male"},
		"social_media": {"twitter", "linkedin"},
	}
	resp, err := client.PostForm(srv.URL+"/selection", form)
	require.NoError(t, err)
	body := readBody(t, resp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="panel-gender"`)
	assert.NotContains(t, body, `id="panel-religion"`, "no religion enabled")
	assert.Contains(t, body, `id="panel-social_media"`)
	assert.Contains(t, body, `id="panel-traffic"`)
	assert.Contains(t, body, `value="Male" checked`)
	assert.NotContains(t, body, `value="Female" checked`)

	resp, err = client.Get(srv.URL + "/api/v1/selection")
	require.NoError(t, err)
	var state models.SelectionState
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &state))
	assert.Equal(t, []string{"Brazil", "Austria"}, state.Entities)
	assert.Equal(t, []bool{true, false}, state.Gender)
	assert.Equal(t, []bool{false, false, false, false, false, false}, state.Religion)
	assert.Equal(t, []bool{true, false, false, false, false, true}, state.SocialMedia)

	resp, err = client.Get(srv.URL + "/charts/gender.png")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, render.ContentType, resp.Header.Get("Content-Type"))
	_, err = png.DecodeConfig(bytes.NewReader([]byte(readBody(t, resp))))
	require.NoError(t, err)

	resp, err = client.Get(srv.URL + "/charts/traffic.png")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/charts/religion.png")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/charts/weather.png")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChartImageHiddenWithoutSelection(t *testing.T) {
	srv, client := newTestServer(t, plainPresentation())

	resp, err := client.Get(srv.URL + "/charts/traffic.png")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionsAreIsolated(t *testing.T) {
	srv, first := newTestServer(t, plainPresentation())
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	second := &http.Client{Jar: jar}

	resp, err := first.PostForm(srv.URL+"/selection", url.Values{"entity": {"Chile"}, "gender": {"Male", "Female"}})
	require.NoError(t, err)
	readBody(t, resp)

	resp, err = second.Get(srv.URL + "/api/v1/selection")
	require.NoError(t, err)
	var state models.SelectionState
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &state))
	assert.Empty(t, state.Entities)
}

func TestLegislatorsPresentation(t *testing.T) {
	banner := filepath.Join(t.TempDir(), "banner.jpeg")
	require.NoError(t, os.WriteFile(banner, []byte("not really a jpeg"), 0o644))

	p, err := PresentationFor(VariantLegislators, banner)
	require.NoError(t, err)
	require.True(t, p.ShowBanner)

	srv, client := newTestServer(t, p)
	resp, err := client.PostForm(srv.URL+"/selection", url.Values{"entity": {"Austria"}, "religion": {"Islam"}})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "The Comparative Legislators Database: Exploring Political Representation")
	assert.Contains(t, body, `src="/static/banner"`)
	assert.Contains(t, body, "Harvard Dataverse")
	assert.Contains(t, body, "Religion Distribution")
	assert.Contains(t, body, "nichiren shu")

	resp, err = client.Get(srv.URL + "/static/banner")
	require.NoError(t, err)
	assert.Equal(t, "not really a jpeg", readBody(t, resp))
}

func TestPresentationFor(t *testing.T) {
	p, err := PresentationFor(VariantLegislators, filepath.Join(t.TempDir(), "missing.jpeg"))
	require.NoError(t, err)
	assert.False(t, p.ShowBanner)

	p, err = PresentationFor("", "")
	require.NoError(t, err)
	assert.Equal(t, VariantPlain, p.Variant)
	assert.Equal(t, "Traffic Information for Selected Entities", p.Copy(models.PanelTraffic).Title)
	assert.Equal(t, "weather", p.Copy(models.PanelID("weather")).Title)

	_, err = PresentationFor("neon", "")
	assert.Error(t, err)
}

func TestBannerNotFoundForPlainVariant(t *testing.T) {
	srv, client := newTestServer(t, plainPresentation())
	resp, err := client.Get(srv.URL + "/static/banner")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestKeepSelectionOrder(t *testing.T) {
	assert.Equal(t, []string{"Chile", "Austria", "Brazil"},
		keepSelectionOrder([]string{"Chile", "Denmark", "Austria"}, []string{"Austria", "Brazil", "Chile"}))
	assert.Equal(t, []string{"Austria"}, keepSelectionOrder(nil, []string{"Austria"}))
	assert.Empty(t, keepSelectionOrder([]string{"Austria"}, nil))
}

func TestStateVersionChangesWithState(t *testing.T) {
	a := models.NewSelectionState()
	b := a.Clone()
	assert.Equal(t, stateVersion(a), stateVersion(b))

	b.Toggle(models.GroupGender, "Male", false)
	assert.NotEqual(t, stateVersion(a), stateVersion(b))
	assert.False(t, strings.Contains(stateVersion(a), " "))
}

func TestNewDashboardDefaultsSize(t *testing.T) {
	sessions := NewSessions(config.NewSessionCache(time.Minute))
	d, err := NewDashboard(testStore(), sessions, plainPresentation(), render.Size{})
	require.NoError(t, err)
	assert.Equal(t, render.DefaultSize, d.size)
}
