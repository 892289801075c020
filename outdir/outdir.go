// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package outdir creates the output folders
// of the plotting commands.
//
// Unless a folder is given,
// each invocation writes its images
// into a new folder named after the local time.
package outdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Layout is the time layout of a folder name,
// before spaces and colons are replaced.
const Layout = "Mon Jan _2 15:04:05 2006"

// Name returns the name of the folder for a given time.
func Name(t time.Time) string {
	n := t.Format(Layout)
	r := strings.NewReplacer(" ", "-", ":", "-")
	return r.Replace(n)
}

// Create creates an output folder.
// If dir is not empty,
// it is created (if needed) and used as the output folder.
// Otherwise a new folder named after t
// is created inside parent.
// It returns the path of the folder.
func Create(dir, parent string, t time.Time) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("unable to create output folder: %v", err)
		}
		return dir, nil
	}

	p := filepath.Join(parent, Name(t))
	if err := os.Mkdir(p, 0o755); err != nil {
		return "", fmt.Errorf("unable to create output folder: %v", err)
	}
	return p, nil
}
