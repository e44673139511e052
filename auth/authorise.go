package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os/exec"
	"runtime"

	"golang.org/x/oauth2"

	"github.com/sheetkit/sheetkit/internal/logger"
)

// Authorise runs the installed-app OAuth2 consent flow and caches the
// resulting token at tokenPath. It starts a localhost callback server,
// opens the consent page in the user's browser and waits for the redirect;
// when no callback server can be started it falls back to the console flow.
func Authorise(ctx context.Context, config *oauth2.Config, tokenPath string) (*oauth2.Token, error) {
	state, err := randomState()
	if err != nil {
		return nil, err
	}

	srv := newCallbackServer(0, state)
	if err := srv.start(); err != nil {
		logger.Warn("could not start local callback server (%v) - falling back to console authorisation", err)
		return ConsoleAuthorise(ctx, config, tokenPath)
	}

	defer srv.close()

	// the registered redirect URI for installed apps is a loopback address
	// with a dynamic port
	flow := *config
	flow.RedirectURL = fmt.Sprintf("http://127.0.0.1:%d/callback", srv.port())

	url := flow.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Printf("Opening the authorisation page in your browser. If it does not open, go to:\n\n    %s\n\n", url)

	if err := openBrowser(url); err != nil {
		logger.Debug("could not open browser (%v)", err)
	}

	code, err := srv.wait(ctx)
	if err != nil {
		return nil, err
	}

	token, err := flow.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	if err := SaveToken(tokenPath, token); err != nil {
		return nil, err
	}

	return token, nil
}

// ConsoleAuthorise runs the paste-the-code variant of the consent flow for
// environments without a browser.
func ConsoleAuthorise(ctx context.Context, config *oauth2.Config, tokenPath string) (*oauth2.Token, error) {
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Go to the following link in your browser then type the authorization code:\n\n    %s\n\n", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	if err := SaveToken(tokenPath, token); err != nil {
		return nil, err
	}

	return token, nil
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("unable to generate state token (%w)", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()

	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()

	default:
		return exec.Command("xdg-open", url).Start()
	}
}
