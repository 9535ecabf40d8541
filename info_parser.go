package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type DropboxInfoEntry struct {
	Path             string `json:"path"`
	Host             uint64 `json:"host"`
	IsTeam           bool   `json:"is_team"`
	SubscriptionType string `json:"subscription_type"`
}

// keyed by account type: "personal" or "business"
type DropboxInfo map[string]DropboxInfoEntry

// DropboxInfoLocations lists where the dropbox client may have written its info.json:
// ~/.dropbox/info.json, %APPDATA%\Dropbox\info.json and %LOCALAPPDATA%\Dropbox\info.json
func DropboxInfoLocations(homeDir string, lookupEnv func(string) (string, bool)) []string {
	locations := []string{}
	if homeDir != "" {
		locations = append(locations, filepath.Join(homeDir, ".dropbox", "info.json"))
	}
	for _, env := range []string{"APPDATA", "LOCALAPPDATA"} {
		if dir, found := lookupEnv(env); found && dir != "" {
			locations = append(locations, filepath.Join(dir, "Dropbox", "info.json"))
		}
	}
	return locations
}

// ParseDropboxInfoPaths reads the first existing info.json. No file at all is
// not an error, it just yields no folders.
func ParseDropboxInfoPaths(locations []string) ([]string, error) {
	for _, location := range locations {
		b, err := os.ReadFile(location)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("error reading dropbox config file %s: %w", location, err)
			}
			continue
		}

		info := DropboxInfo{}
		err = json.Unmarshal(b, &info)
		if err != nil {
			return nil, fmt.Errorf("error parsing dropbox config file %s: %w", location, err)
		}

		paths := []string{}
		for _, value := range info {
			if value.Path != "" {
				paths = append(paths, value.Path)
			}
		}
		sort.Strings(paths)
		return paths, nil
	}

	return nil, nil
}

func IsInsideDropboxFolder(path string, dropboxFolders []string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, folder := range dropboxFolders {
		rel, err := filepath.Rel(filepath.Clean(folder), absPath)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return true
		}
	}
	return false
}
