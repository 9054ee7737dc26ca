package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamaliftics/backend/internal/middleware"
	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/router"
	"github.com/tamaliftics/backend/pkg/testutil"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type echoRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func echo(ctx context.Context, req *echoRequest) (*echoResponse, error) {
	return &echoResponse{Name: req.Name, Count: req.Count}, nil
}

func Test_Router_QueryBinding(t *testing.T) {
	r := router.New(testutil.MockContext())
	router.GET(r, "/echo", echo)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/echo?name=bench&count=3")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Code int          `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, 0, envelope.Code)
	require.Equal(t, "bench", envelope.Data.Name)
	require.Equal(t, 3, envelope.Data.Count)
}

func Test_Router_JSONBody(t *testing.T) {
	r := router.New(testutil.MockContext())
	router.POST(r, "/echo", echo)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/echo", "application/json",
		strings.NewReader(`{"name": "squat", "count": 5}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope struct {
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, "squat", envelope.Data.Name)
	require.Equal(t, 5, envelope.Data.Count)
}

func Test_Router_ErrorEnvelope(t *testing.T) {
	r := router.New(testutil.MockContext())
	router.GET(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found thing")
	})

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/fail")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var envelope struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, int(errorx.NotFound), envelope.Code)
	require.Equal(t, "Not found thing", envelope.Error)
}

func Test_Router_AuthMiddleware(t *testing.T) {
	ctx := testutil.MockContext()

	r := router.New(ctx)
	authed := r.Branch()
	authed.Before(middleware.NewAuthVerifier().WithAccessToken().Middleware())
	router.GET(authed, "/whoami", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: xcontext.RequestUserID(ctx)}, nil
	})

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	// Without a token the request is rejected with a proper error envelope.
	resp, err := http.Get(server.URL + "/whoami")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errEnvelope struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errEnvelope))
	resp.Body.Close()
	require.Equal(t, int(errorx.Unauthenticated), errEnvelope.Code)
	require.Equal(t, "Require an access token", errEnvelope.Error)

	token, err := xcontext.TokenEngine(ctx).Generate("user1", model.AccessToken{
		ID: "user1", Name: "user1",
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/whoami", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, "user1", envelope.Data.Name)
}
