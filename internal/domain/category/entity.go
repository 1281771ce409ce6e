// Package category models the storefront's product directory. The
// public list read path is served through a TTL cache; see
// internal/infra/cache.
package category

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("category name cannot be empty")
	ErrInvalidSlug = errors.New("invalid category slug")
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type Category struct {
	id        uuid.UUID
	name      string
	slug      string
	sortOrder int32
}

func NewCategory(name, slug string, sortOrder int32) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if !slugRegex.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	return &Category{
		id:        uuid.New(),
		name:      name,
		slug:      slug,
		sortOrder: sortOrder,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name, slug string, sortOrder int32) *Category {
	return &Category{id: id, name: name, slug: slug, sortOrder: sortOrder}
}

func (c *Category) ID() uuid.UUID    { return c.id }
func (c *Category) Name() string     { return c.name }
func (c *Category) Slug() string     { return c.slug }
func (c *Category) SortOrder() int32 { return c.sortOrder }

// Slugify derives a URL slug from a display name.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
