package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/kbukum/gofetch/component"
	"github.com/kbukum/gofetch/httpclient"
	"github.com/kbukum/gofetch/httpclient/endpoint"
	"github.com/kbukum/gofetch/httpclient/interceptor"
	"github.com/kbukum/gofetch/logger"
	"github.com/kbukum/gofetch/observability"
	"github.com/kbukum/gofetch/version"
)

const (
	outputJSON = "json"
	outputBody = "body"
)

type getFlags struct {
	baseURL      string
	timeout      time.Duration
	interceptors []string
	parsers      []string
	headers      []string
	bearerToken  string
	output       string
	otlpEndpoint string
}

func newGetCmd(root *rootFlags) *cobra.Command {
	flags := &getFlags{}
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "GET a path relative to the base URL",
		Example: `  gofetch get /items/1 --base-url https://api.example.com
  gofetch get /feed -i sequence,timestamp,response-time,logger --output body`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, root, flags, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.baseURL, "base-url", "", "base URL (overrides http.base_url)")
	f.DurationVar(&flags.timeout, "timeout", 0, "request timeout (overrides http.timeout)")
	f.StringSliceVarP(&flags.interceptors, "interceptors", "i", nil,
		"interceptors in order: sequence, timestamp, response-time, logger, request-id")
	f.StringSliceVar(&flags.parsers, "parsers", nil, "body parsers in resolution order (default: all)")
	f.StringArrayVarP(&flags.headers, "header", "H", nil, `extra header as "Name: value" (repeatable)`)
	f.StringVar(&flags.bearerToken, "bearer-token", "", "bearer token sent in the Authorization header")
	f.StringVarP(&flags.output, "output", "o", outputJSON, "output format: json or body")
	f.StringVar(&flags.otlpEndpoint, "otlp-endpoint", "", "OTLP/HTTP collector host:port for traces and metrics")
	return cmd
}

func runGet(cmd *cobra.Command, root *rootFlags, flags *getFlags, rawPath string) error {
	if flags.output != outputJSON && flags.output != outputBody {
		return fmt.Errorf("--output must be %q or %q (got: %s)", outputJSON, outputBody, flags.output)
	}
	path, err := endpoint.NewPath(rawPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if err := flags.apply(cfg); err != nil {
		return err
	}
	cfg.telemetry(flags.otlpEndpoint)
	cfg.HTTP.ApplyDefaults()
	if err := cfg.HTTP.Validate(); err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)

	interceptors, err := interceptor.FromNames(cfg.HTTP.Interceptors, interceptor.Deps{Logger: log})
	if err != nil {
		return err
	}
	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		return err
	}

	httpComponent := httpclient.NewComponent(cfg.HTTP,
		httpclient.WithInterceptors(interceptors...),
		httpclient.WithExecutorMiddleware(
			httpclient.WithTracing(cfg.Name),
			httpclient.WithMetrics(metrics),
			httpclient.WithLogging(log),
		),
	)

	ctx := cmd.Context()
	registry := component.NewRegistry(log)
	for _, c := range []component.Component{&telemetry{tracing: cfg.Tracing, metrics: cfg.Metrics}, httpComponent} {
		if err := registry.Register(c); err != nil {
			return err
		}
	}
	defer func() {
		if err := registry.StopAll(ctx); err != nil {
			log.Warn("shutdown incomplete", logger.Fields(logger.FieldError, err.Error()))
		}
	}()
	if err := registry.StartAll(ctx); err != nil {
		return err
	}
	for _, d := range registry.Describe() {
		log.Debug("component ready", logger.Fields("name", d.Name, "type", d.Type, "details", d.Details))
	}

	resp, err := httpComponent.Client().Get(ctx, path)
	if err != nil {
		return err
	}
	return writeResponse(cmd.OutOrStdout(), flags.output, resp)
}

// apply overlays command-line flags on the loaded configuration.
func (f *getFlags) apply(cfg *appConfig) error {
	if f.baseURL != "" {
		cfg.HTTP.BaseURL = f.baseURL
	}
	if f.timeout > 0 {
		cfg.HTTP.Timeout = f.timeout
	}
	if len(f.interceptors) > 0 {
		cfg.HTTP.Interceptors = f.interceptors
	}
	if len(f.parsers) > 0 {
		cfg.HTTP.Parsers = f.parsers
	}
	if len(f.headers) > 0 {
		headers := make(map[string]string, len(cfg.HTTP.Headers)+len(f.headers)+1)
		for k, v := range cfg.HTTP.Headers {
			headers[k] = v
		}
		for _, h := range f.headers {
			name, value, ok := strings.Cut(h, ":")
			if !ok || strings.TrimSpace(name) == "" {
				return fmt.Errorf("invalid header %q, expected \"Name: value\"", h)
			}
			headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
		cfg.HTTP.Headers = headers
	}
	if !hasHeader(cfg.HTTP.Headers, "User-Agent") {
		if cfg.HTTP.Headers == nil {
			cfg.HTTP.Headers = map[string]string{}
		}
		cfg.HTTP.Headers["User-Agent"] = version.UserAgent()
	}

	token := cfg.BearerToken
	if f.bearerToken != "" {
		token = f.bearerToken
	}
	if token != "" {
		cfg.HTTP.Auth = httpclient.BearerAuth(token)
	}
	if cfg.HTTP.Name == "" {
		cfg.HTTP.Name = cfg.Name
	}
	return nil
}

// hasHeader reports whether headers sets name. Viper lower-cases map keys
// read from config files, so the comparison ignores case.
func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

type responseView struct {
	URL        string              `json:"url"`
	Status     int                 `json:"status"`
	StatusText string              `json:"status_text"`
	Headers    map[string]string   `json:"headers,omitempty"`
	Body       any                 `json:"body"`
	Metadata   httpclient.Metadata `json:"metadata,omitempty"`
}

func writeResponse(w io.Writer, format string, resp httpclient.Response) error {
	body, err := printable(resp.Body)
	if err != nil {
		return err
	}

	if format == outputBody {
		if s, ok := body.(string); ok {
			_, err := io.WriteString(w, s)
			return err
		}
		return encodeJSON(w, body)
	}

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}
	return encodeJSON(w, responseView{
		URL:        resp.URL,
		Status:     resp.Status,
		StatusText: resp.StatusText,
		Headers:    headers,
		Body:       body,
		Metadata:   resp.Metadata,
	})
}

// printable converts decoded bodies without a useful JSON form.
func printable(body any) (any, error) {
	switch b := body.(type) {
	case *goquery.Document:
		return b.Html()
	case []byte:
		return string(b), nil
	}
	return body, nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
