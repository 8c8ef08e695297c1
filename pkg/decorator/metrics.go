package decorator

import (
	"context"
	"strings"
	"time"

	"github.com/architeacher/device-registry/pkg/metrics"
)

type (
	commandMetricsDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		client metrics.Client
	}

	queryMetricsDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		client metrics.Client
	}
)

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	start := time.Now()
	result, err := d.base.Handle(ctx, cmd)

	recordOutcome(ctx, d.client, "commands", cmd, start, err)

	return result, err
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	start := time.Now()
	result, err := d.base.Execute(ctx, query)

	recordOutcome(ctx, d.client, "queries", query, start, err)

	return result, err
}

// recordOutcome emits <kind>.<action>.duration in seconds plus one of
// <kind>.<action>.success or <kind>.<action>.failure.
func recordOutcome(ctx context.Context, client metrics.Client, kind string, action any, start time.Time, err error) {
	if client == nil {
		return
	}

	prefix := kind + "." + strings.ToLower(generateActionName(action)) + "."

	client.Inc(ctx, prefix+"duration", time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	client.Inc(ctx, prefix+outcome, 1)
}
