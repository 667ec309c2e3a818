package helpers

import (
	"fmt"

	"github.com/openzipkin/zipkin-go"
	zipkinhttp "github.com/openzipkin/zipkin-go/middleware/http"
	"github.com/openzipkin/zipkin-go/reporter"
	httpreporter "github.com/openzipkin/zipkin-go/reporter/http"
	"github.com/rs/zerolog/log"
)

// InitTracer builds the tracer used for board API calls. An empty
// zipkinURL keeps tracing local with a no-op reporter. The returned func
// flushes and closes the reporter.
func InitTracer(serviceName, hostPort, zipkinURL string) (*zipkin.Tracer, func() error, error) {
	var rep reporter.Reporter
	if zipkinURL == "" {
		rep = reporter.NewNoopReporter()
	} else {
		rep = httpreporter.NewReporter(zipkinURL + "/api/v2/spans")
	}

	endpoint, err := zipkin.NewEndpoint(serviceName, hostPort)
	if err != nil {
		log.Warn().Err(err).Str("host_port", hostPort).Msg("unable to create local endpoint")
		endpoint = nil
	}

	opts := []zipkin.TracerOption{}
	if endpoint != nil {
		opts = append(opts, zipkin.WithLocalEndpoint(endpoint))
	}
	tracer, err := zipkin.NewTracer(rep, opts...)
	if err != nil {
		rep.Close()
		return nil, nil, fmt.Errorf("unable to create tracer: %w", err)
	}
	return tracer, rep.Close, nil
}

// NewTracedClient wraps an http client so every board API call gets a span.
func NewTracedClient(tracer *zipkin.Tracer) (*zipkinhttp.Client, error) {
	client, err := zipkinhttp.NewClient(tracer, zipkinhttp.ClientTrace(true))
	if err != nil {
		return nil, fmt.Errorf("unable to create traced client: %w", err)
	}
	return client, nil
}
