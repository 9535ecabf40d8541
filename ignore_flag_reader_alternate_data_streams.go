//go:build windows

package main

import (
	"bytes"
	"os"
)

// Set-Content -Stream writes the value followed by CRLF
func HasDropboxIgnoreFlag(path string) (bool, error) {
	b, err := os.ReadFile(path + ":" + DropboxIgnoredAttribute)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(bytes.TrimSpace(b), []byte("1")), nil
}
