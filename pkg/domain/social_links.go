package domain

// SocialLinks holds the public profiles of an organization.
type SocialLinks struct {
	website   string
	twitter   string
	instagram string
	facebook  string
	youtube   string
}

// SocialLinksParams carries the raw values for NewSocialLinks.
type SocialLinksParams struct {
	Website   string
	Twitter   string
	Instagram string
	Facebook  string
	YouTube   string
}

// NewSocialLinks validates every non-empty link as an absolute http(s) URL.
func NewSocialLinks(p SocialLinksParams) (SocialLinks, error) {
	var s SocialLinks
	for _, f := range []struct {
		name string
		raw  string
		dst  *string
	}{
		{"website", p.Website, &s.website},
		{"twitter", p.Twitter, &s.twitter},
		{"instagram", p.Instagram, &s.instagram},
		{"facebook", p.Facebook, &s.facebook},
		{"youtube", p.YouTube, &s.youtube},
	} {
		v, err := optionalURL(f.name, f.raw)
		if err != nil {
			return SocialLinks{}, err
		}
		*f.dst = v
	}

	return s, nil
}

func (s SocialLinks) Website() string   { return s.website }
func (s SocialLinks) Twitter() string   { return s.twitter }
func (s SocialLinks) Instagram() string { return s.instagram }
func (s SocialLinks) Facebook() string  { return s.facebook }
func (s SocialLinks) YouTube() string   { return s.youtube }

// Params returns the raw values, e.g. to derive a modified copy.
func (s SocialLinks) Params() SocialLinksParams {
	return SocialLinksParams{
		Website:   s.website,
		Twitter:   s.twitter,
		Instagram: s.instagram,
		Facebook:  s.facebook,
		YouTube:   s.youtube,
	}
}
