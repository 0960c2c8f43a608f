package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/testament/internal/db"
	"github.com/alexanderramin/testament/internal/repository"
	"github.com/rs/zerolog"
)

// BestScoreKey is the record the best score lives under.
const BestScoreKey = "best_score"

type scoreService struct {
	scores   repository.ScoreRepo
	uow      db.UnitOfWork
	log      zerolog.Logger
	observer UseCaseObserver
}

func NewScoreService(
	scores repository.ScoreRepo,
	uow db.UnitOfWork,
	log zerolog.Logger,
	observers ...UseCaseObserver,
) ScoreService {
	return &scoreService{
		scores:   scores,
		uow:      uow,
		log:      log,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scoreService) Best(ctx context.Context) int {
	best, err := readBest(ctx, s.scores)
	if err != nil {
		s.log.Warn().Err(err).Msg("best score unavailable; showing 0")
		return 0
	}
	return best
}

func (s *scoreService) Record(ctx context.Context, score int) (best int) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"score": score}
	var err error
	defer func() {
		fields["best"] = best
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record-score",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	prior := 0
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txScores := repository.NewSQLiteScoreRepo(tx)

		cur, err := readBest(ctx, txScores)
		if err != nil {
			return err
		}
		prior = cur
		if score <= cur {
			return nil
		}
		return txScores.Set(ctx, BestScoreKey, score)
	})
	if err != nil {
		err = fmt.Errorf("recording score %d: %w", score, err)
		s.log.Warn().Err(err).Msg("best score not saved; session continues")
	}
	return max(prior, score)
}

func (s *scoreService) Clear(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "clear-score",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if err = s.scores.Set(ctx, BestScoreKey, 0); err != nil {
		return fmt.Errorf("clearing best score: %w", err)
	}
	return nil
}

// readBest treats a missing record as 0.
func readBest(ctx context.Context, scores repository.ScoreRepo) (int, error) {
	v, err := scores.Get(ctx, BestScoreKey)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	return v, err
}
