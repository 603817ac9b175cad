package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceObjectKey(t *testing.T) {
	assert.Equal(t, "abc_reference.wav", ReferenceObjectKey("abc", "wav"))
	assert.Equal(t, "abc_reference.mp3", ReferenceObjectKey("abc", "mp3"))
	// empty extension falls back to wav
	assert.Equal(t, "abc_reference.wav", ReferenceObjectKey("abc", ""))
}

func TestVoiceIDFromObjectKey(t *testing.T) {
	id, ok := VoiceIDFromObjectKey("abc_reference.wav")
	require.True(t, ok)
	assert.Equal(t, "abc", id)

	for _, key := range []string{"", "abc.wav", "_reference.wav", "abc_ref.wav"} {
		_, ok := VoiceIDFromObjectKey(key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestEmbeddingsColumn(t *testing.T) {
	value, err := PlaceholderEmbeddings().Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"placeholder":"engine_integration_pending"}`, value.(string))

	var scanned Embeddings
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, PlaceholderEmbeddings(), scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}
