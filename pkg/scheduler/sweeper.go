package scheduler

import (
	"context"
	"time"

	"EchoVoice/internal/models"
	stores "EchoVoice/pkg/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sweeper reclaims reference-audio objects that have no matching metadata
// row. The create flow uploads the object before inserting the row, so a
// failure in between leaves an orphan; deleted voices also leave their object
// behind. The grace window keeps in-flight creates out of scope.
type Sweeper struct {
	db    *gorm.DB
	store stores.Store
	grace time.Duration
	log   *zap.Logger
}

func NewSweeper(db *gorm.DB, store stores.Store, grace time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{db: db, store: store, grace: grace, log: log}
}

func (s *Sweeper) Run(ctx context.Context) {
	objects, err := s.store.List("")
	if err != nil {
		s.log.Warn("sweep: list reference objects", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-s.grace)
	removed := 0
	for _, obj := range objects {
		voiceID, ok := models.VoiceIDFromObjectKey(obj.Key)
		if !ok {
			// Not following the reference-key convention, leave it alone
			continue
		}
		if obj.LastModified.After(cutoff) {
			continue
		}
		exists, err := models.VoiceExists(s.db.WithContext(ctx), voiceID)
		if err != nil {
			s.log.Warn("sweep: check voice record", zap.String("voice_id", voiceID), zap.Error(err))
			continue
		}
		if exists {
			continue
		}
		if err := s.store.Delete(obj.Key); err != nil {
			s.log.Warn("sweep: delete orphaned object", zap.String("key", obj.Key), zap.Error(err))
			continue
		}
		removed++
		s.log.Info("sweep: removed orphaned reference audio", zap.String("key", obj.Key))
	}
	if removed > 0 {
		s.log.Info("sweep finished", zap.Int("removed", removed), zap.Int("scanned", len(objects)))
	}
}
