package worker

// archive_worker.go
// Processes trip-archival jobs from QueueArchive: loads the completed trip
// and folds its checked items into the family's purchase patterns.
// Retries with exponential backoff (max 3 attempts), then moves the job to
// the dead letter queue.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/yuda85/family-ops-sub001/internal/repository"
	"github.com/yuda85/family-ops-sub001/internal/service"
)

const archiveMaxAttempts = 3

// ArchiveJobPayload is the job envelope sent to QueueArchive.
type ArchiveJobPayload struct {
	TripID string `json:"trip_id"`
}

// ArchiveWorker consumes archive jobs. Pattern folding runs here, off the
// checkout request path — a slow or failing fold never delays the shopper.
type ArchiveWorker struct {
	trips   repository.TripRepository
	history service.HistoryService
}

func NewArchiveWorker(trips repository.TripRepository, history service.HistoryService) *ArchiveWorker {
	return &ArchiveWorker{trips: trips, history: history}
}

// Process handles a single archive job:
//  1. Parse ArchiveJobPayload from the job envelope
//  2. Fetch the trip with its frozen items
//  3. Fold checked items into purchase patterns, with backoff retries
//  4. On exhaustion, move the job to the DLQ for manual inspection
func (w *ArchiveWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload ArchiveJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("archive_worker: invalid payload")
		return
	}

	tripID, err := uuid.Parse(payload.TripID)
	if err != nil {
		log.Error().Str("trip_id", payload.TripID).Msg("archive_worker: invalid trip_id")
		return
	}

	trip, err := w.trips.FindByID(ctx, tripID)
	if err != nil {
		log.Error().Err(err).Str("trip_id", payload.TripID).Msg("archive_worker: trip not found")
		return
	}

	archiveErr := withRetry(ctx, archiveMaxAttempts, func(attempt int) error {
		return w.history.Archive(ctx, trip)
	})
	if archiveErr != nil {
		log.Error().Err(archiveErr).
			Str("trip_id", payload.TripID).
			Msg("archive_worker: pattern folding failed after retries")
		SendToDLQ(ctx, rdb, QueueArchive, "archive", raw, archiveErr.Error(), archiveMaxAttempts)
		return
	}

	log.Info().Str("trip_id", payload.TripID).Msg("archive_worker: trip archived")
}

// withRetry runs fn up to maxAttempts times with exponential backoff
// (1s, 2s, ...). Returns the last error on exhaustion.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}
		backoff := time.Duration(1<<(attempt-1)) * time.Second
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return err
}
