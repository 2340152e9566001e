package jobs

import (
	"context"
	"time"

	"teampulse-backend/internal/logger"
)

// AutoResetStatuses reverts presence statuses to the default for every org
// whose configured reset hour matches the current hour. The sweep fires once
// an hour; each org is only touched in its own hour window, and the reset
// itself is idempotent, so a duplicate run is harmless.
func (jr *JobRunner) AutoResetStatuses() {
	jr.runWithRecovery("AutoResetStatuses", func() {
		ctx := context.Background()

		// Reset hours are interpreted in UTC; no per-org timezone is stored.
		now := time.Now().UTC()
		hour := int32(now.Hour())

		orgs, err := jr.store.OrganizationRepository.ListByResetHour(ctx, hour)
		if err != nil {
			logger.Error("Failed to load orgs for auto-reset", "hour", hour, "error", err)
			return
		}

		var total int64
		for _, org := range orgs {
			count, err := jr.presence.AutoReset(ctx, org.ID, org.ResetHour, now)
			if err != nil {
				logger.Error("Auto-reset failed for org", "org_id", org.ID, "error", err)
				continue
			}
			total += count
		}

		logger.Info("Presence auto-reset sweep finished", "hour", hour, "orgs", len(orgs), "statuses_reverted", total)
	})
}
