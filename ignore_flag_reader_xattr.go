//go:build !windows

package main

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/xattr"
)

// attr on linux writes into the user namespace, xattr on darwin has no namespaces
func dropboxIgnoredXattrName() string {
	if runtime.GOOS == PlatformDarwin {
		return DropboxIgnoredAttribute
	}
	return "user." + DropboxIgnoredAttribute
}

func handleXattrErr(err error) error {
	if err != nil {
		var eErr *xattr.Error
		if errors.As(err, &eErr) {
			err = fmt.Errorf("error reading attribute %s of %s: %w", eErr.Name, eErr.Path, eErr.Err)
		}
	}
	return err
}

func HasDropboxIgnoreFlag(path string) (bool, error) {
	if !xattr.XATTR_SUPPORTED {
		return false, fmt.Errorf("xattr not supported on %s", runtime.GOOS)
	}

	name := dropboxIgnoredXattrName()
	attrs, err := xattr.List(path)
	if err != nil {
		return false, handleXattrErr(err)
	}
	found := false
	for _, attr := range attrs {
		if attr == name {
			found = true
		}
	}
	if !found {
		return false, nil
	}

	b, err := xattr.Get(path, name)
	if err != nil {
		return false, handleXattrErr(err)
	}

	// attr -V 1 stores "1", some tools append a newline
	return bytes.Equal([]byte("1"), []byte(strings.TrimSpace(string(b)))), nil
}
