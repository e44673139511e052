// Package auth manages the OAuth2 credentials for the Google Sheets and
// Drive APIs: parsing the client_secret.json downloaded from the Google
// Cloud console, running the installed-app consent flow and caching the
// resulting token.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuth2 scopes for the APIs used by sheetkit.
const (
	Sheets         = "https://www.googleapis.com/auth/spreadsheets"
	SheetsReadOnly = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DriveReadOnly  = "https://www.googleapis.com/auth/drive.readonly"
)

var (
	// ErrNoCredentials indicates a missing or unreadable client_secret.json.
	ErrNoCredentials = errors.New("could not find client configuration file")

	// ErrNoToken indicates there is no cached token - run 'authorise' first.
	ErrNoToken = errors.New("not authorised")
)

// Config reads an OAuth2 client configuration from a client_secret.json
// file.
func Config(credentials string, scopes ...string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrNoCredentials, credentials)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client configuration file '%s' (%w)", credentials, err)
	}

	return config, nil
}

// TokenFromFile reads a cached token.
func TokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrNoToken, err)
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, fmt.Errorf("invalid token file '%s' (%w)", path, err)
	}

	return &token, nil
}

// SaveToken caches a token, creating the enclosing directory if necessary.
func SaveToken(path string, token *oauth2.Token) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token (%w)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}

// TokenSource returns a token source backed by the cached token. The source
// refreshes expired tokens transparently using the refresh token.
func TokenSource(ctx context.Context, config *oauth2.Config, tokenPath string) (oauth2.TokenSource, error) {
	token, err := TokenFromFile(tokenPath)
	if err != nil {
		return nil, err
	}

	return config.TokenSource(ctx, token), nil
}

// Client returns an authorized HTTP client backed by the cached token.
func Client(ctx context.Context, config *oauth2.Config, tokenPath string) (*http.Client, error) {
	ts, err := TokenSource(ctx, config, tokenPath)
	if err != nil {
		return nil, err
	}

	return oauth2.NewClient(ctx, ts), nil
}
