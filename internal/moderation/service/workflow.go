package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mentorhub/internal/audit"
	dErrors "mentorhub/pkg/domain-errors"
)

// run composes the two phases every moderation workflow shares. The mutation
// must be durably committed before the notification is attempted, and a
// notification failure never rolls the mutation back: it is surfaced as a
// distinct CodeNotificationFailed error so callers can report the committed
// change separately from the delivery problem.
func (s *Service) run(ctx context.Context, action, subject string, mutate, notify func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "moderation."+action,
		trace.WithAttributes(attribute.String("subject", subject)),
	)
	defer span.End()

	if err := mutate(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mutation failed")
		return err
	}

	if s.metrics != nil {
		s.metrics.ModerationActions.WithLabelValues(action).Inc()
	}

	if notify == nil {
		return nil
	}
	if err := notify(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "notification failed")
		if s.metrics != nil {
			s.metrics.NotificationFailures.WithLabelValues(action).Inc()
		}
		s.logAudit(ctx, string(audit.EventNotificationError), subject,
			"action", action,
			"error", err.Error(),
		)
		return dErrors.Wrap(err, dErrors.CodeNotificationFailed,
			"The change was applied but the notification email could not be sent")
	}
	return nil
}
