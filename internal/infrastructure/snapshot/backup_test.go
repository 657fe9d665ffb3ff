package snapshot

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackup_RoundTrip(t *testing.T) {
	state := SeedState()
	state.CompanyInfo.Name = "backup pharmacy"
	state.CurrentUser = &state.Users[0]

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, state))

	// Output is zstd-framed.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), zstdMagic))

	restored, err := Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, "backup pharmacy", restored.CompanyInfo.Name)
	assert.Equal(t, len(state.Products), len(restored.Products))

	// The session user never travels in a backup.
	assert.Nil(t, restored.CurrentUser)
}

func TestExport_DoesNotMutateState(t *testing.T) {
	state := SeedState()
	state.CurrentUser = &state.Users[0]

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, state))
	assert.NotNil(t, state.CurrentUser)
}

func TestImport_PlainJSON(t *testing.T) {
	raw, err := json.Marshal(SeedState())
	require.NoError(t, err)

	restored, err := Import(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.NotEmpty(t, restored.Products)
	assert.Len(t, restored.Users, 1)
}

func TestImport_Garbage(t *testing.T) {
	_, err := Import(bytes.NewReader([]byte("definitely not a backup")))
	assert.Error(t, err)
}

func TestImport_MissingCoreStaysNil(t *testing.T) {
	// A backup without the core collections must be detectable downstream.
	restored, err := Import(bytes.NewReader([]byte(`{"users":[]}`)))
	require.NoError(t, err)
	assert.Nil(t, restored.Products)
	assert.Nil(t, restored.Sales)
}

func TestBackupFilename(t *testing.T) {
	at, err := time.Parse(time.RFC3339, "2026-08-31T14:05:09Z")
	require.NoError(t, err)

	assert.Equal(t, "pharmacy-backup-20260831-140509.json.zst", BackupFilename(at))
}
