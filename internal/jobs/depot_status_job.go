package jobs

import (
	"context"
	"log/slog"

	"depot/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DepotStatusJob periodically snapshots the depot inventory and logs it.
// Runs every minute so operators can follow custody counts and total weight
// without querying the API.
type DepotStatusJob struct {
	handler queries.GetDepotParcelsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDepotStatusJob creates a new job for logging the depot inventory.
// Uses GetDepotParcelsQueryHandler to read the current custody snapshot.
func NewDepotStatusJob(handler queries.GetDepotParcelsQueryHandler, logger *slog.Logger) *DepotStatusJob {
	return &DepotStatusJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "depot_status_job"),
	}
}

// Start begins the depot status job to run every minute.
func (j *DepotStatusJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetDepotParcelsQuery()

		parcels, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Depot status job failed", "error", err)
			return
		}

		var totalWeight float64
		for _, p := range parcels {
			totalWeight += p.WeightGrams
		}

		j.logger.InfoContext(ctx, "Depot inventory snapshot",
			"parcels", len(parcels),
			"total_weight_grams", totalWeight,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Depot status job started (running every minute)")
	return nil
}

// Stop stops the depot status job.
func (j *DepotStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Depot status job stopped")
}
