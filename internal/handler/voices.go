package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"EchoVoice/internal/models"
	"EchoVoice/pkg/apperr"
	"EchoVoice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Byte length over an assumed 44.1kHz sample rate. Wrong for compressed or
// differently sampled audio; stays until a real decoder lands.
const assumedSampleRate = 44100

const testAudioURL = "https://example.com/test.wav"

// CloneVoice uploads a reference sample and creates the voice record. The
// object is written before the row; if the insert fails the object stays
// behind and the sweeper reclaims it.
func (h *Handlers) CloneVoice(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		response.Error(c, apperr.Wrap(apperr.ValidationFailure, err, "audio file is required"))
		return
	}
	defer file.Close()

	voiceName := c.PostForm("voice_name")
	if voiceName == "" {
		response.Error(c, apperr.New(apperr.ValidationFailure, "voice_name is required"))
		return
	}
	voiceDescription := c.PostForm("voice_description")

	payload, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, apperr.Wrap(apperr.UpstreamFailure, err, "read audio payload"))
		return
	}

	voiceID := uuid.NewString()
	key := models.ReferenceObjectKey(voiceID, fileExt(header.Filename))

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/wav"
	}
	if err := h.store.Write(key, bytes.NewReader(payload), int64(len(payload)), contentType); err != nil {
		response.Error(c, apperr.Wrap(apperr.UpstreamFailure, err, "upload reference audio"))
		return
	}

	voice := models.ClonedVoice{
		ID:                voiceID,
		VoiceName:         voiceName,
		VoiceDescription:  voiceDescription,
		ReferenceAudioURL: h.store.PublicURL(key),
		VoiceEmbeddings:   models.PlaceholderEmbeddings(),
		AudioDuration:     int64(len(payload)) / assumedSampleRate,
		CreatedAt:         time.Now(),
	}
	if err := h.db.Create(&voice).Error; err != nil {
		response.Error(c, apperr.Wrap(apperr.UpstreamFailure, err, "save voice record"))
		return
	}

	h.log.Info("voice cloned",
		zap.String("voice_id", voiceID),
		zap.String("voice_name", voiceName),
		zap.Int("payload_bytes", len(payload)))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"voice_id": voiceID,
		"message":  "Voice cloned successfully",
	})
}

// TestVoice validates that the voice exists; actual synthesis is pending, so
// the audio URL is a fixed placeholder.
func (h *Handlers) TestVoice(c *gin.Context) {
	if c.PostForm("test_text") == "" {
		response.Error(c, apperr.New(apperr.ValidationFailure, "test_text is required"))
		return
	}

	voiceID := c.Param("voice_id")
	var voice models.ClonedVoice
	if err := h.db.First(&voice, "id = ?", voiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apperr.New(apperr.NotFound, "Voice not found"))
			return
		}
		response.Error(c, apperr.Wrap(apperr.UpstreamFailure, err, "load voice record"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"audio_url": testAudioURL,
		"message":   "Test audio generated (synthesis engine pending)",
	})
}

// GenerateSpeech acknowledges the request without looking anything up; it is
// a stub until the synthesis engine exists.
func (h *Handlers) GenerateSpeech(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Speech generation pending",
	})
}

// ListVoices returns every record, newest first.
func (h *Handlers) ListVoices(c *gin.Context) {
	var voices []models.ClonedVoice
	if err := h.db.Order("created_at DESC").Find(&voices).Error; err != nil {
		response.Error(c, apperr.Wrap(apperr.UpstreamFailure, err, "list voice records"))
		return
	}
	if voices == nil {
		voices = []models.ClonedVoice{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "voices": voices})
}

// DeleteVoice removes the metadata row. A missing id is treated as success:
// the row is absent either way. The reference object is left to the sweeper.
func (h *Handlers) DeleteVoice(c *gin.Context) {
	voiceID := c.Param("voice_id")
	if err := h.db.Delete(&models.ClonedVoice{}, "id = ?", voiceID).Error; err != nil {
		response.Error(c, apperr.Wrap(apperr.UpstreamFailure, err, "delete voice record"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func fileExt(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "wav"
	}
	return ext
}
