package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Embeddings is stored as a JSON text column. Until a synthesis engine
// computes real embeddings every row carries the fixed placeholder.
type Embeddings map[string]string

func PlaceholderEmbeddings() Embeddings {
	return Embeddings{"placeholder": "engine_integration_pending"}
}

func (e Embeddings) Value() (driver.Value, error) {
	b, err := json.Marshal(e)
	return string(b), err
}

func (e *Embeddings) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	case nil:
		*e = nil
		return nil
	}
	return fmt.Errorf("unsupported embeddings column type %T", value)
}

// ClonedVoice is one cloned-voice record. The id is assigned before any store
// write and rows are never updated: a voice is either present in full or
// absent.
type ClonedVoice struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	VoiceName         string     `gorm:"size:255;not null" json:"voice_name"`
	VoiceDescription  string     `gorm:"size:1024" json:"voice_description"`
	ReferenceAudioURL string     `gorm:"size:1024" json:"reference_audio_url"`
	VoiceEmbeddings   Embeddings `gorm:"type:text" json:"voice_embeddings"`
	AudioDuration     int64      `json:"audio_duration"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (ClonedVoice) TableName() string { return "cloned_voices" }

const referenceKeyMarker = "_reference."

// ReferenceObjectKey is the object-store key convention for reference audio.
func ReferenceObjectKey(voiceID, ext string) string {
	if ext == "" {
		ext = "wav"
	}
	return voiceID + referenceKeyMarker + ext
}

// VoiceIDFromObjectKey inverts ReferenceObjectKey; ok is false for keys that
// do not follow the convention.
func VoiceIDFromObjectKey(key string) (string, bool) {
	idx := strings.Index(key, referenceKeyMarker)
	if idx <= 0 {
		return "", false
	}
	return key[:idx], true
}

func VoiceExists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&ClonedVoice{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
