package llm

import (
	"encoding/json"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// ErrNoGitHubToken is returned when no Copilot credential can be found.
var ErrNoGitHubToken = errors.New("GitHub token not found: set HORARIO_GITHUB_TOKEN or GITHUB_TOKEN, or sign in to Copilot in your editor")

// tokenEnv is checked in order before the editor files.
var tokenEnv = []string{"HORARIO_GITHUB_TOKEN", "GITHUB_TOKEN"}

// copilotFiles are written by the Copilot editor plugins under
// <config>/github-copilot.
var copilotFiles = []string{"hosts.json", "apps.json"}

// GitHubToken finds the OAuth token used to open a Copilot session.
func GitHubToken() (string, error) {
	for _, name := range tokenEnv {
		if tok := strings.TrimSpace(os.Getenv(name)); tok != "" {
			return tok, nil
		}
	}

	dir, err := copilotConfigDir()
	if err != nil {
		return "", ErrNoGitHubToken
	}
	for _, name := range copilotFiles {
		if tok := readCopilotFile(filepath.Join(dir, "github-copilot", name)); tok != "" {
			return tok, nil
		}
	}
	return "", ErrNoGitHubToken
}

func copilotConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

// readCopilotFile returns the oauth_token of the first github.com entry,
// in key order, or "" when the file has none.
func readCopilotFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var hosts map[string]struct {
		OAuthToken string `json:"oauth_token"`
	}
	if err := json.Unmarshal(data, &hosts); err != nil {
		return ""
	}
	for _, key := range slices.Sorted(maps.Keys(hosts)) {
		if strings.Contains(key, "github.com") && hosts[key].OAuthToken != "" {
			return hosts[key].OAuthToken
		}
	}
	return ""
}
