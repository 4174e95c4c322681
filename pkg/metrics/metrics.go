// Package metrics holds the OpenTelemetry instruments recorded by the vote
// workflows and the Prometheus backed meter provider that exports them.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "fanvote"

// Workflow names used as the "workflow" attribute.
const (
	WorkflowCastVote   = "cast_vote"
	WorkflowRemoveVote = "remove_vote"
	WorkflowRedeem     = "redeem_code"
)

// NewPrometheusProvider returns a meter provider whose readings are exposed
// through reg.
func NewPrometheusProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Recorder records workflow outcomes.
type Recorder struct {
	votesCast     metric.Int64Counter
	votesRemoved  metric.Int64Counter
	codesRedeemed metric.Int64Counter
	conflicts     metric.Int64Counter
	duration      metric.Float64Histogram
}

// NewRecorder creates the instruments on a meter of mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	votesCast, err := meter.Int64Counter("fanvote_votes_cast",
		metric.WithDescription("Votes successfully cast."))
	if err != nil {
		return nil, fmt.Errorf("could not create votes cast counter: %w", err)
	}
	votesRemoved, err := meter.Int64Counter("fanvote_votes_removed",
		metric.WithDescription("Votes successfully removed."))
	if err != nil {
		return nil, fmt.Errorf("could not create votes removed counter: %w", err)
	}
	codesRedeemed, err := meter.Int64Counter("fanvote_codes_redeemed",
		metric.WithDescription("Codes successfully redeemed."))
	if err != nil {
		return nil, fmt.Errorf("could not create codes redeemed counter: %w", err)
	}
	conflicts, err := meter.Int64Counter("fanvote_version_conflicts",
		metric.WithDescription("Workflow attempts lost to a concurrent writer."))
	if err != nil {
		return nil, fmt.Errorf("could not create conflicts counter: %w", err)
	}
	duration, err := meter.Float64Histogram("fanvote_workflow_duration",
		metric.WithDescription("Duration of a workflow including retries."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create workflow duration histogram: %w", err)
	}

	return &Recorder{
		votesCast:     votesCast,
		votesRemoved:  votesRemoved,
		codesRedeemed: codesRedeemed,
		conflicts:     conflicts,
		duration:      duration,
	}, nil
}

// Noop returns a recorder that discards everything. Services fall back to
// it when they are built without one.
func Noop() *Recorder {
	r, _ := NewRecorder(noop.NewMeterProvider())

	return r
}

func (r *Recorder) VoteCast(ctx context.Context)     { r.votesCast.Add(ctx, 1) }
func (r *Recorder) VoteRemoved(ctx context.Context)  { r.votesRemoved.Add(ctx, 1) }
func (r *Recorder) CodeRedeemed(ctx context.Context) { r.codesRedeemed.Add(ctx, 1) }

// Conflict counts one lost optimistic concurrency race in workflow.
func (r *Recorder) Conflict(ctx context.Context, workflow string) {
	r.conflicts.Add(ctx, 1, metric.WithAttributes(attribute.String("workflow", workflow)))
}

// Observe records how long workflow took since start and whether it
// failed.
func (r *Recorder) Observe(ctx context.Context, workflow string, start time.Time, err error) {
	r.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("workflow", workflow),
		attribute.Bool("error", err != nil),
	))
}
