package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/hello-ecr/hello-ecr/internal/config"
	"github.com/hello-ecr/hello-ecr/internal/metrics"
)

var specPath = filepath.Join("..", "..", "docs", "api", "openapi.yaml")

// startContractServer runs the real router and loads the OpenAPI document
// with its server URL pointed at the test server.
func startContractServer(t *testing.T) (*httptest.Server, *openapi3.T, routers.Router) {
	t.Helper()

	recorder := metrics.NewPrometheus("hello_ecr")
	srv := httptest.NewServer(New(Options{
		Config:  &config.Config{Environment: "development", MaxRequestBodySize: 1024},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: recorder,
		Exposer: recorder,
	}))
	t.Cleanup(srv.Close)

	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromFile(specPath)
	if err != nil {
		t.Fatalf("Failed to load OpenAPI spec from %s: %v", specPath, err)
	}

	if err := spec.Validate(context.Background()); err != nil {
		t.Fatalf("OpenAPI spec validation failed: %v", err)
	}

	spec.Servers = openapi3.Servers{{URL: srv.URL}}

	router, err := gorillamux.NewRouter(spec)
	if err != nil {
		t.Fatalf("Failed to create router from spec: %v", err)
	}

	return srv, spec, router
}

// TestContract_DocumentedPaths ensures every registered route is documented.
func TestContract_DocumentedPaths(t *testing.T) {
	_, spec, _ := startContractServer(t)

	for _, path := range []string{"/", "/health", "/api/info", "/api/echo", "/metrics"} {
		if spec.Paths.Find(path) == nil {
			t.Errorf("Expected path %s not found in spec", path)
		}
	}
}

// TestContract_Responses validates live responses against the documented schemas.
func TestContract_Responses(t *testing.T) {
	srv, _, router := startContractServer(t)

	client := srv.Client()

	cases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"info", http.MethodGet, "/api/info", "", http.StatusOK},
		{"echo object", http.MethodPost, "/api/echo", `{"a":1,"b":[true,"x"]}`, http.StatusOK},
		{"echo scalar", http.MethodPost, "/api/echo", `42`, http.StatusOK},
		{"echo malformed", http.MethodPost, "/api/echo", `{"a":`, http.StatusBadRequest},
		{"echo too large", http.MethodPost, "/api/echo", `"` + strings.Repeat("x", 2048) + `"`, http.StatusRequestEntityTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var reqBody io.Reader
			if tc.body != "" {
				reqBody = strings.NewReader(tc.body)
			}

			req, err := http.NewRequest(tc.method, srv.URL+tc.path, reqBody)
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := client.Do(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("Failed to read response body: %v", err)
			}

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d: %s", resp.StatusCode, tc.wantStatus, body)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				t.Fatalf("Could not find route in spec: %v", err)
			}

			requestValidationInput := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}

			responseValidationInput := &openapi3filter.ResponseValidationInput{
				RequestValidationInput: requestValidationInput,
				Status:                 resp.StatusCode,
				Header:                 resp.Header,
				Body:                   io.NopCloser(strings.NewReader(string(body))),
				Options: &openapi3filter.Options{
					IncludeResponseStatus: true,
				},
			}

			if err := openapi3filter.ValidateResponse(context.Background(), responseValidationInput); err != nil {
				t.Errorf("Response validation failed: %v\nBody: %s", err, body)
			}
		})
	}
}
