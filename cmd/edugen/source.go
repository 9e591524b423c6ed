package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/edugen"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// inferSourceType guesses the source type from the reference itself.
// An explicit type from the command line always wins.
func inferSourceType(source, explicit string) edugen.SourceType {
	if explicit != "" {
		return edugen.SourceType(explicit)
	}
	if source == "" {
		return edugen.SourceText
	}

	lower := strings.ToLower(source)
	switch {
	case strings.Contains(lower, "youtube.com/") || strings.Contains(lower, "youtu.be/"):
		return edugen.SourceYouTube
	case strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://"):
		return edugen.SourceURL
	}

	if _, err := os.Stat(source); err == nil {
		if imageExtensions[strings.ToLower(filepath.Ext(source))] {
			return edugen.SourceImage
		}
		return edugen.SourceFile
	}
	return edugen.SourceText
}
