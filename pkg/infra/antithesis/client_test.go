package antithesis_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/antithesis-trigger/pkg/infra/antithesis"
	"github.com/m-mizutani/gt"
)

func TestClient_Launch(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotUser   string
		gotPass   string
		gotBody   map[string]map[string]any
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := antithesis.NewClient()
	body := model.RequestBody{
		model.KeyImages:      "app:latest",
		model.KeyPRID:        42,
		model.KeyCallbackURL: nil,
	}

	resp, err := client.Launch(context.Background(), server.URL+"/api/v1/launch_experiment/nb", body, model.BasicAuth{
		Username: "user",
		Password: "pass",
	})
	gt.NoError(t, err)
	gt.Value(t, resp.StatusCode).Equal(http.StatusAccepted)
	gt.True(t, resp.Accepted())
	gt.Value(t, string(resp.Body)).Equal(`{"ok":true}`)

	gt.Value(t, gotMethod).Equal(http.MethodPost)
	gt.Value(t, gotPath).Equal("/api/v1/launch_experiment/nb")
	gt.Value(t, gotUser).Equal("user")
	gt.Value(t, gotPass).Equal("pass")

	params := gotBody["params"]
	gt.Value(t, params[model.KeyImages]).Equal(any("app:latest"))
	gt.Value(t, params[model.KeyPRID]).Equal(any(float64(42)))
	_, hasCallback := params[model.KeyCallbackURL]
	gt.False(t, hasCallback)
}

func TestClient_Launch_NonSuccessIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resp, err := antithesis.NewClient().Launch(context.Background(), server.URL, model.RequestBody{}, model.BasicAuth{})
	gt.NoError(t, err)
	gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
	gt.False(t, resp.Accepted())
}

func TestClient_Launch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := antithesis.NewClient(antithesis.WithTimeout(20 * time.Millisecond))
	_, err := client.Launch(context.Background(), server.URL, model.RequestBody{}, model.BasicAuth{})
	gt.Error(t, err)
}

func TestClient_Launch_InvalidURL(t *testing.T) {
	_, err := antithesis.NewClient().Launch(context.Background(), "https://bad host/x", model.RequestBody{}, model.BasicAuth{})
	gt.Error(t, err)
}
