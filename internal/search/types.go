package search

// Category distinguishes the two kinds of lookup hits the widget can show.
type Category string

const (
	CategoryProfile Category = "profile"
	CategoryHashtag Category = "hashtag"
)

func (c Category) IsValid() bool {
	return c == CategoryProfile || c == CategoryHashtag
}

// Platform is the source network a hit belongs to.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms returns every supported network, in display order.
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformTwitter, PlatformTikTok}
}

func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformTwitter, PlatformTikTok:
		return true
	}
	return false
}

type ProfilePayload struct {
	Handle        string `json:"username"`
	AvatarURL     string `json:"avatar,omitempty"`
	FollowerCount int64  `json:"followers,omitempty"`
}

// Displayable reports whether the profile carries enough data to render.
// A bare handle with no follower count and no avatar is a placeholder the
// lookup API sometimes returns for accounts it has never crawled.
func (p ProfilePayload) Displayable() bool {
	return p.Handle != "" && (p.FollowerCount > 0 || p.AvatarURL != "")
}

type HashtagPayload struct {
	Tag       string `json:"tag"`
	PostCount int64  `json:"posts,omitempty"`
}

func (h HashtagPayload) Displayable() bool {
	return h.Tag != "" && h.PostCount > 0
}

// ResultItem is one normalized hit from the lookup API. Exactly one of
// Profile or Hashtag is set, matching Category.
type ResultItem struct {
	Category Category        `json:"category"`
	Platform Platform        `json:"platform"`
	Profile  *ProfilePayload `json:"profile,omitempty"`
	Hashtag  *HashtagPayload `json:"hashtag,omitempty"`
}

// Identifier returns the handle or tag the item points at.
func (r ResultItem) Identifier() string {
	switch r.Category {
	case CategoryProfile:
		if r.Profile != nil {
			return r.Profile.Handle
		}
	case CategoryHashtag:
		if r.Hashtag != nil {
			return r.Hashtag.Tag
		}
	}
	return ""
}

// Displayable applies the per-category completeness rules.
func (r ResultItem) Displayable() bool {
	switch r.Category {
	case CategoryProfile:
		return r.Profile != nil && r.Profile.Displayable()
	case CategoryHashtag:
		return r.Hashtag != nil && r.Hashtag.Displayable()
	}
	return false
}
