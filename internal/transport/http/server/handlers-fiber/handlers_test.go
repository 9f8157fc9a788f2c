package handlers_fiber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deepakbhimavarapu/SkillSol/config"
	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
	"github.com/deepakbhimavarapu/SkillSol/internal/repository/dataset"
	"github.com/deepakbhimavarapu/SkillSol/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, datasetPath string) *fiber.App {
	t.Helper()

	log := zap.NewNop().Sugar()
	cfg := &config.Config{Dataset: config.DatasetConfig{Path: datasetPath}}

	ctx := context.Background()
	store := dataset.New(ctx, log, cfg)
	require.NoError(t, store.OnStart(ctx))

	uc := usecase.New(log, ctx, store, time.Second)

	app := fiber.New()
	NewHandler(log, uc).RegisterRoutes(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestListEndpoints(t *testing.T) {
	app := newApp(t, "testdata/dataset.json")

	tests := []struct {
		path string
		want int
	}{
		{"/organizations", 2},
		{"/teams", 1},
		{"/roles", 1},
		{"/individuals", 2},
		{"/skills", 2},
		{"/teams?organization_id=o1", 1},
		{"/teams?organization_id=no-such-org", 0},
		{"/roles?team_id=t1", 1},
		{"/roles?team_id=nope", 0},
		{"/individuals?role_id=r1", 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, app, tt.path)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var list []json.RawMessage
			require.NoError(t, json.Unmarshal(body, &list))
			require.Len(t, list, tt.want)
		})
	}
}

func TestGetByID(t *testing.T) {
	app := newApp(t, "testdata/dataset.json")

	resp, body := get(t, app, "/organizations/o1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var org entities.Organization
	require.NoError(t, json.Unmarshal(body, &org))
	require.Equal(t, "o1", org.ID)
	require.Equal(t, "tech", org.Industry)

	for _, path := range []string{"/organizations/nope", "/teams/nope", "/roles/nope", "/individuals/nope"} {
		resp, body := get(t, app, path)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, path)

		var envelope ErrorResponse
		require.NoError(t, json.Unmarshal(body, &envelope))
		require.Equal(t, CodeNotFound, envelope.Error.Code)
	}
}

func TestIndividualsBothFiltersMatchTeamOnly(t *testing.T) {
	app := newApp(t, "testdata/dataset.json")

	_, teamOnly := get(t, app, "/individuals?team_id=t1")
	resp, both := get(t, app, "/individuals?team_id=t1&role_id=r1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, string(teamOnly), string(both))
}

func TestBenchmarksEndpoint(t *testing.T) {
	app := newApp(t, "testdata/dataset.json")

	resp, body := get(t, app, "/benchmarks")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mapping entities.BenchmarkSet
	require.NoError(t, json.Unmarshal(body, &mapping))
	require.Equal(t, entities.BenchmarkSet{"tech": {"s1", "s2"}}, mapping)

	resp, body = get(t, app, "/benchmarks?industry=tech")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ids []string
	require.NoError(t, json.Unmarshal(body, &ids))
	require.Equal(t, []string{"s1", "s2"}, ids)

	resp, body = get(t, app, "/benchmarks?industry=unknown")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "[]", string(body))
}

func TestSkillGapEndpoint(t *testing.T) {
	app := newApp(t, "testdata/dataset.json")

	resp, body := get(t, app, "/skillgap?org_id=o1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var gap []entities.Skill
	require.NoError(t, json.Unmarshal(body, &gap))
	require.Equal(t, []entities.Skill{{ID: "s2"}}, gap)
}

func TestSkillGapErrors(t *testing.T) {
	app := newApp(t, "testdata/dataset.json")

	tests := []struct {
		name   string
		path   string
		status int
		code   ErrorCode
	}{
		{"missing org_id", "/skillgap", http.StatusBadRequest, CodeInvalidArgument},
		{"unknown org", "/skillgap?org_id=missing", http.StatusNotFound, CodeNotFound},
		{"org without industry", "/skillgap?org_id=o2", http.StatusBadRequest, CodeInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, app, tt.path)
			require.Equal(t, tt.status, resp.StatusCode)

			var envelope ErrorResponse
			require.NoError(t, json.Unmarshal(body, &envelope))
			require.Equal(t, tt.code, envelope.Error.Code)
		})
	}
}

func TestServesEmptyCollectionsWhenDatasetMissing(t *testing.T) {
	app := newApp(t, "testdata/absent.json")

	for _, path := range []string{"/organizations", "/teams", "/roles", "/individuals", "/skills"} {
		resp, body := get(t, app, path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.JSONEq(t, "[]", string(body), path)
	}

	resp, body := get(t, app, "/benchmarks")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "{}", string(body))

	resp, _ = get(t, app, "/organizations/o1")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
