package credential

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/gitcreds/internal/logfields"
	"git.home.luguber.info/inful/gitcreds/internal/metrics"
)

// BatchResolver resolves a set of accounts independently and collects the
// successes. Accounts that fail softly (helper errors, missing fields,
// unsupported backends) are logged and skipped; a fatal error aborts the
// whole batch without returning a partial list.
type BatchResolver struct {
	resolver *Resolver
	logger   *slog.Logger
	recorder metrics.Recorder
}

// NewBatchResolver creates a batch resolver using the given runner. A nil
// logger falls back to slog.Default().
func NewBatchResolver(runner Runner, logger *slog.Logger) *BatchResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchResolver{
		resolver: NewResolver(runner, logger),
		logger:   logger,
		recorder: metrics.NoopRecorder{},
	}
}

// WithRecorder swaps the metrics recorder and returns the receiver for chaining.
func (b *BatchResolver) WithRecorder(rec metrics.Recorder) *BatchResolver {
	if rec != nil {
		b.recorder = rec
	}
	return b
}

// ResolveAll resolves every account in order, sequentially. The returned
// credentials preserve the input order with failed accounts omitted.
func (b *BatchResolver) ResolveAll(ctx context.Context, accounts []Account) ([]Credential, error) {
	runID := uuid.NewString()
	log := b.logger.With(logfields.RunID(runID))
	batchStart := time.Now()

	creds := make([]Credential, 0, len(accounts))
	for _, account := range accounts {
		start := time.Now()
		cred, err := b.resolver.Resolve(ctx, account)
		b.recorder.ObserveResolveDuration(account.Realm, time.Since(start))

		if err != nil {
			if IsFatal(err) {
				b.recorder.IncResolveResult(metrics.ResultFatal)
				b.recorder.ObserveBatchDuration(time.Since(batchStart))
				b.recorder.IncBatchOutcome("fatal")
				return nil, err
			}
			b.recorder.IncResolveResult(metrics.ResultSkipped)
			log.Info("no credential resolved for account",
				logfields.Realm(account.Realm),
				logfields.Address(account.Address),
				logfields.Error(err))
			continue
		}

		b.recorder.IncResolveResult(metrics.ResultSuccess)
		creds = append(creds, cred)
	}

	b.recorder.ObserveBatchDuration(time.Since(batchStart))
	b.recorder.IncBatchOutcome("success")
	log.Debug("batch resolution finished",
		slog.Int("accounts", len(accounts)),
		slog.Int("resolved", len(creds)),
		logfields.DurationMS(float64(time.Since(batchStart).Milliseconds())))
	return creds, nil
}
