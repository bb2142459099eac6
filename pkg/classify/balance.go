package classify

import (
	"sort"
	"time"

	"github.com/MORS0422/realtime-tech-library/models"
)

// redundancy is how many articles beyond the per-category minimum a
// crowded category keeps, so a later quality pass has something to drop.
const redundancy = 2

// Balance trims an over-represented category down to minPerCategory plus
// a small redundancy margin, keeping the newest articles. Categories at
// or under the minimum keep everything they have. Input order is
// preserved between categories (first-seen category order) and within an
// untrimmed category.
func Balance(articles []models.Article, minPerCategory int) []models.Article {
	if minPerCategory <= 0 {
		return articles
	}

	var order []string
	groups := make(map[string][]models.Article)
	for _, a := range articles {
		if _, seen := groups[a.Category]; !seen {
			order = append(order, a.Category)
		}
		groups[a.Category] = append(groups[a.Category], a)
	}

	var out []models.Article
	for _, cat := range order {
		group := groups[cat]
		if len(group) <= minPerCategory {
			out = append(out, group...)
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return publishedTime(group[i]).After(publishedTime(group[j]))
		})
		keep := minPerCategory + redundancy
		if keep > len(group) {
			keep = len(group)
		}
		out = append(out, group[:keep]...)
	}
	return out
}

func publishedTime(a models.Article) time.Time {
	t, ok := ParseDate(a.Published)
	if !ok {
		return time.Time{}
	}
	return t
}
