// Package youtube loads video transcripts as documents. Transcripts
// come from YouTube's timedtext endpoint, discovered through the
// caption track metadata embedded in the watch page.
package youtube

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/edugen"
)

// Ensure Loader implements edugen.DocumentLoader at compile time.
var _ edugen.DocumentLoader = (*Loader)(nil)

var (
	captionTrackRe = regexp.MustCompile(`"captionTracks":\[\{"baseUrl":"([^"]+)"`)
	titleRe        = regexp.MustCompile(`<title>(.*?)</title>`)
)

// Loader fetches a video's caption track and returns the transcript as
// a single document.
type Loader struct {
	fetcher edugen.Fetcher
}

// NewLoader creates a new Loader using the given fetcher for both the
// watch page and the timedtext request.
func NewLoader(fetcher edugen.Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load resolves the caption track for the video at source and returns
// its transcript. Videos without captions return ENOTFOUND.
func (l *Loader) Load(ctx context.Context, source string) ([]*edugen.Document, error) {
	if _, err := VideoID(source); err != nil {
		return nil, err
	}

	page, err := l.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	m := captionTrackRe.FindStringSubmatch(page)
	if m == nil {
		return nil, edugen.Errorf(edugen.ENOTFOUND, "no caption track for %s", source)
	}
	// The baseUrl sits inside JSON, so ampersands arrive as &.
	trackURL := strings.ReplaceAll(m[1], `\u0026`, "&")

	xml, err := l.fetcher.Fetch(ctx, trackURL)
	if err != nil {
		return nil, err
	}

	transcript, err := ParseTimedText(xml)
	if err != nil {
		return nil, err
	}
	if transcript == "" {
		return nil, edugen.Errorf(edugen.ENOTFOUND, "empty transcript for %s", source)
	}

	title := ""
	if tm := titleRe.FindStringSubmatch(page); tm != nil {
		title = strings.TrimSuffix(html.UnescapeString(tm[1]), " - YouTube")
	}

	doc := &edugen.Document{
		ID:          uuid.New().String(),
		Source:      source,
		SourceType:  edugen.SourceYouTube,
		Title:       title,
		Content:     transcript,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(transcript)),
		LoadedAt:    time.Now(),
	}
	return []*edugen.Document{doc}, nil
}

// VideoID extracts the video ID from a watch or short-form URL.
func VideoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", edugen.Errorf(edugen.EINVALID, "invalid youtube url %q: %v", rawURL, err)
	}

	switch {
	case strings.HasSuffix(u.Host, "youtu.be"):
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
	case strings.HasSuffix(u.Host, "youtube.com"):
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok && rest != "" {
			return rest, nil
		}
	}
	return "", edugen.Errorf(edugen.EINVALID, "cannot extract video ID from %q", rawURL)
}

// ParseTimedText extracts caption lines from a timedtext XML document
// and joins them into a plain-text transcript.
func ParseTimedText(xml string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return "", edugen.Errorf(edugen.EINVALID, "parse timedtext: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return "", edugen.Errorf(edugen.EINVALID, "timedtext has no root element")
	}

	var lines []string
	for _, el := range root.FindElements("//text") {
		line := strings.TrimSpace(html.UnescapeString(el.Text()))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " "), nil
}
