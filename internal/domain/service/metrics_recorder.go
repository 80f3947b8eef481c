package service

import (
	"petkeeper/internal/domain/entity"
)

// MetricsRecorder receives delivery and hygiene counters.
type MetricsRecorder interface {
	// RecordDispatch records one fan-out for kind and its per-token outcomes.
	RecordDispatch(kind entity.EventKind, result *entity.DispatchResult)

	// RecordTokensRemoved records tokens pruned by hygiene.
	RecordTokensRemoved(count int)
}
