package notes

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/globalnotes/notes-workspace/internal/model"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Stats summarizes a user's notes for the profile view.
type Stats struct {
	TotalNotes int    `json:"totalNotes"`
	TotalWords int    `json:"totalWords"`
	LastActive string `json:"lastActive"`
}

// ComputeStats counts notes and words (markup stripped) and labels the most
// recent activity relative to now.
func ComputeStats(notes []model.Note, now time.Time) Stats {
	st := Stats{TotalNotes: len(notes), LastActive: "Never"}

	var latest time.Time
	for _, n := range notes {
		text := tagPattern.ReplaceAllString(n.Content, " ")
		st.TotalWords += len(strings.Fields(text))

		stamp := n.UpdatedAt
		if stamp == "" {
			stamp = n.CreatedAt
		}
		if ts, err := time.Parse(time.RFC3339, stamp); err == nil && ts.After(latest) {
			latest = ts
		}
	}

	if latest.IsZero() {
		return st
	}
	switch days := int(now.Sub(latest).Hours() / 24); {
	case days <= 0:
		st.LastActive = "Today"
	case days == 1:
		st.LastActive = "Yesterday"
	case days < 7:
		st.LastActive = fmt.Sprintf("%d days ago", days)
	default:
		st.LastActive = latest.Format("Jan 2, 2006")
	}
	return st
}
