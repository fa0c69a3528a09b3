package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Post represents a blog post entity in the system.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	Featured    bool      `json:"featured"`
	Category    string    `json:"category"`
	Tags        TagList   `json:"tags"`
	Author      string    `json:"author"`
	AuthorRole  string    `json:"authorRole"`
	PublishedAt *string   `json:"publishedAt"`
	ImageURL    string    `json:"imageUrl"`
	ReadTime    string    `json:"readTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostFilter restricts which posts a listing returns.
// An authenticated admin listing sets IncludeDrafts; public listings
// never do, regardless of the other fields.
type PostFilter struct {
	Category      string
	FeaturedOnly  bool
	IncludeDrafts bool
}

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatuses contains all valid post statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// PublishedDateFormat is how publication dates are stored and served.
const PublishedDateFormat = "2006-01-02"

// TagList is a post's ordered tag sequence. It accepts either a JSON
// array or a single comma-separated string on input, and always
// serializes as an array, never null.
type TagList []string

// UnmarshalJSON accepts ["a","b"] as well as "a, b" and normalizes
// both to a trimmed list with empty entries dropped.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*t = normalizeTags(arr)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = normalizeTags(strings.Split(s, ","))
		return nil
	}

	// Null or any other shape degrades to an empty list.
	*t = TagList{}
	return nil
}

// MarshalJSON serializes nil as [] so responses never carry null tags.
func (t TagList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// ParseStoredTags decodes the jsonb column value. Malformed stored
// data degrades to an empty list rather than failing the read.
func ParseStoredTags(raw []byte) TagList {
	if len(raw) == 0 {
		return TagList{}
	}
	var arr []string
	if err := json.Unmarshal(raw, &arr); err != nil {
		return TagList{}
	}
	return normalizeTags(arr)
}

func normalizeTags(in []string) TagList {
	out := make(TagList, 0, len(in))
	for _, tag := range in {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
