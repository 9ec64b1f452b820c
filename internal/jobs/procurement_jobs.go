package jobs

import (
	"context"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/logger"
)

// OverdueRequestDigest logs every open supply request whose deadline has
// passed without an award. Notification delivery is handled by a separate
// system that tails these entries.
func (jr *JobRunner) OverdueRequestDigest() {
	jr.runWithRecovery("OverdueRequestDigest", func() {
		jr.logAlerts(domain.AlertOverdue)
	})
}

// DeadlineReminderDigest logs open requests whose bidding window closes soon
// and that have no award yet.
func (jr *JobRunner) DeadlineReminderDigest() {
	jr.runWithRecovery("DeadlineReminderDigest", func() {
		jr.logAlerts(domain.AlertNotAssigned)
	})
}

func (jr *JobRunner) logAlerts(kind domain.AlertKind) {
	ctx := context.Background()

	alerts, err := jr.reporting.Alerts(ctx)
	if err != nil {
		logger.Error("Failed to compute procurement alerts", "error", err)
		return
	}

	count := 0
	for _, alert := range alerts {
		if alert.Kind != kind {
			continue
		}
		logger.Warn("procurement alert",
			"kind", alert.Kind,
			"request_id", alert.RequestID,
			"request_code", alert.RequestCode,
			"title", alert.Title,
			"deadline", alert.Deadline,
			"bid_count", alert.BidCount,
		)
		count++
	}
	logger.Info("Procurement alert digest finished", "kind", kind, "alerts", count)
}
