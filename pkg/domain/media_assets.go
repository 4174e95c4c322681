package domain

import (
	"net/url"
	"strings"
)

// MediaAssets groups the images used to present an organization. Every URL
// is optional but must be an absolute http(s) URL when present.
type MediaAssets struct {
	logoURL   string
	bannerURL string
	badgeURL  string
}

// NewMediaAssets validates and builds MediaAssets.
func NewMediaAssets(logoURL, bannerURL, badgeURL string) (MediaAssets, error) {
	var err error
	m := MediaAssets{}
	if m.logoURL, err = optionalURL("logo url", logoURL); err != nil {
		return MediaAssets{}, err
	}
	if m.bannerURL, err = optionalURL("banner url", bannerURL); err != nil {
		return MediaAssets{}, err
	}
	if m.badgeURL, err = optionalURL("badge url", badgeURL); err != nil {
		return MediaAssets{}, err
	}

	return m, nil
}

func (m MediaAssets) LogoURL() string   { return m.logoURL }
func (m MediaAssets) BannerURL() string { return m.bannerURL }
func (m MediaAssets) BadgeURL() string  { return m.badgeURL }

// optionalURL trims raw and, when non-empty, requires an absolute http or
// https URL with a host.
func optionalURL(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", invalid("%s must be an absolute http(s) URL", field)
	}

	return raw, nil
}
