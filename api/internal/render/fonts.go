package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// ErrFontUnavailable is fatal to a request: without a renderable typeface
// there is no document.
var ErrFontUnavailable = errors.New("font unavailable")

var cssFontURL = regexp.MustCompile(`url\((https?://[^)]+\.(?:ttf|otf|woff2?))\)`)

// FontSource fetches the certificate typeface. If CSSURL is set the
// stylesheet is fetched first and the embedded font-file URL extracted.
type FontSource struct {
	URL    string
	CSSURL string
	client *http.Client
}

func NewFontSource(url, cssURL string) *FontSource {
	return &FontSource{
		URL:    url,
		CSSURL: cssURL,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *FontSource) Fetch(ctx context.Context) ([]byte, error) {
	url := f.URL
	if f.CSSURL != "" {
		resolved, err := f.resolveFromCSS(ctx)
		if err != nil {
			return nil, err
		}
		url = resolved
	}

	data, err := f.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font file", ErrFontUnavailable)
	}
	return data, nil
}

func (f *FontSource) resolveFromCSS(ctx context.Context) (string, error) {
	css, err := f.get(ctx, f.CSSURL)
	if err != nil {
		return "", fmt.Errorf("%w: stylesheet: %v", ErrFontUnavailable, err)
	}
	m := cssFontURL.FindSubmatch(css)
	if m == nil {
		return "", fmt.Errorf("%w: no font url in stylesheet", ErrFontUnavailable)
	}
	return string(m[1]), nil
}

func (f *FontSource) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
