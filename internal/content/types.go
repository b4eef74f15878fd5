package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitecontent/internal/locale"
)

// Kind names a content type. The value doubles as the directory name under
// the content root.
type Kind string

const (
	KindPages Kind = "pages"
	KindBlog  Kind = "blog"
	KindNews  Kind = "news"
)

// Kinds lists every supported content kind.
func Kinds() []Kind {
	return []Kind{KindPages, KindBlog, KindNews}
}

// ParseKind maps user input onto a Kind. Singular forms are accepted.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pages", "page":
		return KindPages, nil
	case "blog", "post", "posts":
		return KindBlog, nil
	case "news", "news-item":
		return KindNews, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}
}

func (k Kind) String() string { return string(k) }

// DefaultPageTitle is used when a page has no title.
const DefaultPageTitle = "Untitled page"

// PageContent is a resolved page.
type PageContent struct {
	ID         uuid.UUID     `json:"id"`
	Slug       string        `json:"slug"`
	Title      string        `json:"title"`
	Tagline    string        `json:"tagline,omitempty"`
	Intro      string        `json:"intro,omitempty"`
	Body       string        `json:"body"`
	Locale     locale.Locale `json:"locale"`
	IsFallback bool          `json:"isFallback"`
}

// BlogSummary is the listing projection of a blog post.
type BlogSummary struct {
	ID          uuid.UUID     `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Date        string        `json:"date"`
	PublishedAt time.Time     `json:"publishedAt"`
	Locale      locale.Locale `json:"locale"`
	IsFallback  bool          `json:"isFallback"`
	Image       string        `json:"image,omitempty"`
	ImageAlt    string        `json:"imageAlt,omitempty"`
}

// BlogPost is a resolved blog post including its rendered body.
type BlogPost struct {
	BlogSummary
	Body string `json:"body"`
}

// Summary projects the post down to its listing shape.
func (p BlogPost) Summary() BlogSummary {
	return p.BlogSummary
}

// NewsItem is a resolved news item.
type NewsItem struct {
	ID          uuid.UUID     `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Summary     string        `json:"summary,omitempty"`
	Date        string        `json:"date"`
	PublishedAt time.Time     `json:"publishedAt"`
	Locale      locale.Locale `json:"locale"`
	IsFallback  bool          `json:"isFallback"`
	Image       string        `json:"image,omitempty"`
	ImageAlt    string        `json:"imageAlt,omitempty"`
	Link        string        `json:"link,omitempty"`
	Body        string        `json:"body"`
}

// IsExternalLink reports whether Link points off-site and should open in a
// new tab.
func (n NewsItem) IsExternalLink() bool {
	return strings.HasPrefix(n.Link, "http")
}
