package domain

import "fmt"

// ContentKind discriminates the content variants that can occupy a scheduling slot.
type ContentKind string

const (
	ContentKindPost  ContentKind = "post"
	ContentKindReel  ContentKind = "reel"
	ContentKindStory ContentKind = "story"
)

func (k ContentKind) Valid() bool {
	switch k {
	case ContentKindPost, ContentKindReel, ContentKindStory:
		return true
	}
	return false
}

// WireKey is the request field that carries a content id of this kind.
func (k ContentKind) WireKey() (string, error) {
	switch k {
	case ContentKindPost:
		return "post_id", nil
	case ContentKindReel:
		return "reel_id", nil
	case ContentKindStory:
		return "story_id", nil
	default:
		return "", fmt.Errorf("unknown content kind %q", k)
	}
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type MediaRef struct {
	URL  string    `json:"url"`
	Type MediaType `json:"type"`
}

func (m MediaRef) IsVideo() bool {
	return m.Type == MediaTypeVideo
}

// ContentItem is generated content owned by the content subsystem. The scheduling
// core only reads it and switches on Kind.
type ContentItem struct {
	Kind      ContentKind // post, reel or story
	ID        string
	CompanyID string
	Title     string // title or caption
	Text      string
	Hashtags  string
	Media     []MediaRef
}

func (c ContentItem) HasCarousel() bool {
	return len(c.Media) > 1
}
