package banner

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("banner title cannot be empty")
	ErrEmptyImageURL = errors.New("banner image URL cannot be empty")
)

// Banner is a promotional tile on the storefront home page. Inactive
// banners stay in the back-office but are not served publicly.
type Banner struct {
	id        uuid.UUID
	title     string
	imageURL  string
	linkURL   string
	isActive  bool
	sortOrder int32
}

func NewBanner(title, imageURL, linkURL string, isActive bool, sortOrder int32) (*Banner, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, ErrEmptyImageURL
	}

	return &Banner{
		id:        uuid.New(),
		title:     title,
		imageURL:  imageURL,
		linkURL:   strings.TrimSpace(linkURL),
		isActive:  isActive,
		sortOrder: sortOrder,
	}, nil
}

func ReconstructBanner(id uuid.UUID, title, imageURL, linkURL string, isActive bool, sortOrder int32) *Banner {
	return &Banner{
		id:        id,
		title:     title,
		imageURL:  imageURL,
		linkURL:   linkURL,
		isActive:  isActive,
		sortOrder: sortOrder,
	}
}

func (b *Banner) ID() uuid.UUID    { return b.id }
func (b *Banner) Title() string    { return b.title }
func (b *Banner) ImageURL() string { return b.imageURL }
func (b *Banner) LinkURL() string  { return b.linkURL }
func (b *Banner) IsActive() bool   { return b.isActive }
func (b *Banner) SortOrder() int32 { return b.sortOrder }
