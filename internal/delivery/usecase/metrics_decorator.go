package usecase

import (
	"context"
	"time"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	"github.com/allisson/sealedfields/internal/metrics"
)

const metricsDomain = "delivery"

type processorUseCaseWithMetrics struct {
	next    ProcessorUseCase
	metrics metrics.BusinessMetrics
}

// NewProcessorUseCaseWithMetrics wraps a ProcessorUseCase with metrics recording.
// Besides the run itself it counts sent and failed entries.
func NewProcessorUseCaseWithMetrics(useCase ProcessorUseCase, m metrics.BusinessMetrics) ProcessorUseCase {
	return &processorUseCaseWithMetrics{next: useCase, metrics: m}
}

func (p *processorUseCaseWithMetrics) ProcessQueue(ctx context.Context) (*deliveryDomain.RunStats, error) {
	start := time.Now()
	stats, err := p.next.ProcessQueue(ctx)

	status := metrics.StatusOf(err)
	p.metrics.RecordOperation(ctx, metricsDomain, "process_queue", status)
	p.metrics.RecordDuration(ctx, metricsDomain, "process_queue", time.Since(start), status)

	if stats != nil {
		p.metrics.RecordCount(ctx, metricsDomain, "entry_sent", metrics.StatusSuccess, int64(stats.Sent))
		p.metrics.RecordCount(ctx, metricsDomain, "entry_failed", metrics.StatusError, int64(stats.Failed))
	}

	return stats, err
}

type interceptUseCaseWithMetrics struct {
	next    InterceptUseCase
	metrics metrics.BusinessMetrics
}

// NewInterceptUseCaseWithMetrics wraps an InterceptUseCase with metrics recording.
// A suppressed send counts as success, a failed-open intercept as error and a
// message without placeholders as "skipped".
func NewInterceptUseCaseWithMetrics(useCase InterceptUseCase, m metrics.BusinessMetrics) InterceptUseCase {
	return &interceptUseCaseWithMetrics{next: useCase, metrics: m}
}

func (i *interceptUseCaseWithMetrics) OnOutboundEmail(
	ctx context.Context,
	email *deliveryDomain.OutboundEmail,
) (bool, error) {
	start := time.Now()
	suppressed, err := i.next.OnOutboundEmail(ctx, email)

	status := "skipped"
	switch {
	case err != nil:
		status = metrics.StatusError
	case suppressed:
		status = metrics.StatusSuccess
	}
	i.metrics.RecordOperation(ctx, metricsDomain, "intercept", status)
	i.metrics.RecordDuration(ctx, metricsDomain, "intercept", time.Since(start), status)

	return suppressed, err
}
