// Package catalogue implements C2: the per-day post set, synthesizing
// clinic:<unit> posts on weekday clinic days and distinguishing on-call
// posts from clinic posts.
package catalogue

import (
	"github.com/medschedulr/roster/internal/domain"
)

// Catalogue holds the resolved weekday/weekend post lists and the derived
// on-call post set (spec.md §4.2).
type Catalogue struct {
	PostsWeekday []string
	PostsWeekend []string
	OnCallPosts  map[string]bool // (posts_weekday ∪ posts_weekend) − {clinic:*}
}

// Build synthesizes one clinic:<unit> post per unit onto the caller-supplied
// weekday post list, and computes the on-call post set.
func Build(postsWeekday, postsWeekend []string, units []domain.Unit) *Catalogue {
	weekday := make([]string, len(postsWeekday), len(postsWeekday)+len(units))
	copy(weekday, postsWeekday)
	for _, u := range units {
		weekday = append(weekday, domain.ClinicPostName(u.ID))
	}

	onCall := make(map[string]bool, len(weekday)+len(postsWeekend))
	for _, t := range weekday {
		if !domain.IsClinicPost(t) {
			onCall[t] = true
		}
	}
	for _, t := range postsWeekend {
		if !domain.IsClinicPost(t) {
			onCall[t] = true
		}
	}

	return &Catalogue{
		PostsWeekday: weekday,
		PostsWeekend: append([]string(nil), postsWeekend...),
		OnCallPosts:  onCall,
	}
}

// PostsForDay returns the post list materialized for a given day, per its
// weekday/weekend classification.
func (c *Catalogue) PostsForDay(day domain.Day) []string {
	if day.IsWeekend() {
		return c.PostsWeekend
	}
	return c.PostsWeekday
}

// IsOnCall reports whether a post participates in rest/spacing/penalty
// logic (i.e. is not a synthesized clinic post).
func (c *Catalogue) IsOnCall(post string) bool {
	return c.OnCallPosts[post]
}
