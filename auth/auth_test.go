package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const clientSecret = `{
  "installed": {
    "client_id": "384-qwerty.apps.googleusercontent.com",
    "project_id": "sheetkit-test",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "client_secret": "not-a-real-secret",
    "redirect_uris": ["http://localhost"]
  }
}`

func TestConfig(t *testing.T) {
	credentials := filepath.Join(t.TempDir(), "client_secret.json")

	require.NoError(t, os.WriteFile(credentials, []byte(clientSecret), 0o600))

	config, err := Config(credentials, Sheets, SheetsReadOnly)

	require.NoError(t, err)
	assert.Equal(t, "384-qwerty.apps.googleusercontent.com", config.ClientID)
	assert.Equal(t, []string{Sheets, SheetsReadOnly}, config.Scopes)
}

func TestConfigWithMissingFile(t *testing.T) {
	_, err := Config(filepath.Join(t.TempDir(), "client_secret.json"), Sheets)

	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestConfigWithInvalidFile(t *testing.T) {
	credentials := filepath.Join(t.TempDir(), "client_secret.json")

	require.NoError(t, os.WriteFile(credentials, []byte("not JSON"), 0o600))

	_, err := Config(credentials, Sheets)

	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sheetkit", "token.json")

	token := oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Date(2025, time.November, 5, 12, 34, 56, 0, time.UTC),
	}

	require.NoError(t, SaveToken(path, &token))

	restored, err := TokenFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, restored.AccessToken)
	assert.Equal(t, token.RefreshToken, restored.RefreshToken)
	assert.True(t, token.Expiry.Equal(restored.Expiry))

	info, err := os.Stat(path)

	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestTokenFromMissingFile(t *testing.T) {
	_, err := TokenFromFile(filepath.Join(t.TempDir(), "token.json"))

	assert.ErrorIs(t, err, ErrNoToken)
}
