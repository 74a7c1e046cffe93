package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/gofetch/version"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("name: gofetch\nlogging:\n  level: error\n"+content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func decodeJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", s, err)
	}
	return m
}

func TestGet_JSONOutput(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"widget"}`))
	}))
	defer srv.Close()

	code, out, errOut := runCLI(t, "get", "/items/1",
		"--config", writeConfig(t, ""),
		"--base-url", srv.URL,
		"-i", "sequence,response-time",
		"--bearer-token", "secret",
	)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}

	if got.URL.Path != "/items/1" {
		t.Errorf("unexpected path %q", got.URL.Path)
	}
	if got.Header.Get("Authorization") != "Bearer secret" {
		t.Errorf("unexpected Authorization %q", got.Header.Get("Authorization"))
	}
	if got.Header.Get("User-Agent") != version.UserAgent() {
		t.Errorf("unexpected User-Agent %q", got.Header.Get("User-Agent"))
	}

	view := decodeJSON(t, out)
	if view["status"] != float64(200) || view["status_text"] != "OK" {
		t.Errorf("unexpected status in %v", view)
	}
	body, _ := view["body"].(map[string]any)
	if body["name"] != "widget" {
		t.Errorf("unexpected body %v", view["body"])
	}
	md, _ := view["metadata"].(map[string]any)
	if md["sequenceNumber"] != float64(1) {
		t.Errorf("expected sequenceNumber 1, got %v", md["sequenceNumber"])
	}
	if _, ok := md["responseTimeMs"]; !ok {
		t.Error("expected responseTimeMs in metadata")
	}
}

func TestGet_BodyOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	code, out, errOut := runCLI(t, "get", "/", "--config", writeConfig(t, ""), "--base-url", srv.URL, "-o", "body")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "hello" {
		t.Errorf("expected raw body, got %q", out)
	}
}

func TestGet_HTMLBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Hi</h1></body></html>"))
	}))
	defer srv.Close()

	code, out, errOut := runCLI(t, "get", "/", "--config", writeConfig(t, ""), "--base-url", srv.URL, "-o", "body")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "<h1>Hi</h1>") {
		t.Errorf("expected rendered HTML, got %q", out)
	}
}

func TestGet_FromConfigFile(t *testing.T) {
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("X-Team")
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := writeConfig(t, "http:\n  base_url: "+srv.URL+"\n  headers:\n    X-Team: core\n")
	code, out, errOut := runCLI(t, "get", "/missing", "--config", cfg, "-H", "X-Extra: 1")
	if code != 0 {
		t.Fatalf("4xx must not fail the command, exit %d: %s", code, errOut)
	}
	if header != "core" {
		t.Errorf("expected header from config, got %q", header)
	}
	if view := decodeJSON(t, out); view["status"] != float64(404) {
		t.Errorf("expected 404, got %v", view["status"])
	}
}

func TestGet_Errors(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()
	cfg := writeConfig(t, "")

	tests := []struct {
		name string
		args []string
		kind string
	}{
		{"network", []string{"get", "/a", "--config", cfg, "--base-url", closed.URL}, "NetworkError"},
		{"invalid path", []string{"get", "items", "--config", cfg, "--base-url", "https://api.test"}, "InvalidPathError"},
		{"missing base url", []string{"get", "/a", "--config", cfg}, "InvalidConfigError"},
		{"unknown interceptor", []string{"get", "/a", "--config", cfg, "--base-url", "https://api.test", "-i", "retry"}, "InvalidConfigError"},
		{"interceptor alias", []string{"get", "/a", "--config", cfg, "--base-url", "https://api.test", "-i", "responsetime"}, "InvalidConfigError"},
		{"base url with query", []string{"get", "/a", "--config", cfg, "--base-url", "https://api.test?x=1"}, "InvalidUrlError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != 1 {
				t.Fatalf("expected exit 1, got %d", code)
			}
			if out != "" {
				t.Errorf("expected nothing on stdout, got %q", out)
			}
			body, _ := decodeJSON(t, errOut)["error"].(map[string]any)
			if body["kind"] != tt.kind {
				t.Errorf("expected kind %s, got %v", tt.kind, body)
			}
		})
	}
}

func TestGet_BadFlags(t *testing.T) {
	cfg := writeConfig(t, "")
	for name, args := range map[string][]string{
		"output": {"get", "/a", "--config", cfg, "--base-url", "https://api.test", "-o", "xml"},
		"header": {"get", "/a", "--config", cfg, "--base-url", "https://api.test", "-H", "nocolon"},
		"args":   {"get"},
	} {
		t.Run(name, func(t *testing.T) {
			code, _, errOut := runCLI(t, args...)
			if code != 1 || !strings.HasPrefix(errOut, "Error: ") {
				t.Errorf("expected plain error, got %d %q", code, errOut)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	if code != 0 || !strings.HasPrefix(out, "gofetch "+version.Version) {
		t.Errorf("unexpected output %q", out)
	}

	code, out, _ = runCLI(t, "version", "--json")
	if code != 0 || decodeJSON(t, out)["version"] != version.Version {
		t.Errorf("unexpected JSON output %q", out)
	}
}

func TestGetFlagsApply(t *testing.T) {
	cfg := &appConfig{BearerToken: "from-config"}
	cfg.Name = "gofetch"
	cfg.HTTP.Headers = map[string]string{"Accept": "application/json"}

	f := &getFlags{headers: []string{"X-A: 1", "Accept: text/plain"}}
	if err := f.apply(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.HTTP.Headers["Accept"] != "text/plain" || cfg.HTTP.Headers["X-A"] != "1" {
		t.Errorf("unexpected headers %v", cfg.HTTP.Headers)
	}
	if cfg.HTTP.Auth == nil || cfg.HTTP.Auth.Token != "from-config" {
		t.Errorf("expected bearer auth from config, got %+v", cfg.HTTP.Auth)
	}
	if cfg.HTTP.Name != "gofetch" {
		t.Errorf("expected client name from service, got %q", cfg.HTTP.Name)
	}
}

func TestTelemetry_Disabled(t *testing.T) {
	tel := &telemetry{}
	ctx := context.Background()
	if err := tel.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if err := tel.Stop(ctx); err != nil {
		t.Fatal(err)
	}
	if d := tel.Describe(); d.Details != "disabled" {
		t.Errorf("unexpected description %+v", d)
	}
}

func TestAppConfigTelemetry(t *testing.T) {
	cfg := &appConfig{}
	cfg.ApplyDefaults()
	cfg.telemetry("collector:4318")
	if cfg.Tracing.Endpoint != "collector:4318" || cfg.Metrics.Endpoint != "collector:4318" {
		t.Errorf("expected endpoint on both signals, got %+v %+v", cfg.Tracing, cfg.Metrics)
	}
	if cfg.Tracing.ServiceName != "gofetch" || cfg.Tracing.SampleRate != 1 {
		t.Errorf("unexpected tracing config %+v", cfg.Tracing)
	}
}
