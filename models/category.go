package models

// Category is one of the site's fixed content sections.
type Category struct {
	Key   string
	Name  string
	Color string
}

// Categories lists the site sections in display order. The keys, names
// and accent colors are mirrored by the static page markup, so changing
// them here requires a matching frontend change.
var Categories = []Category{
	{Key: "ue", Name: "Unreal Engine", Color: "#00f0ff"},
	{Key: "ta", Name: "技术美术", Color: "#b026ff"},
	{Key: "render", Name: "实时渲染", Color: "#ffbe0b"},
	{Key: "ta-render", Name: "TA渲染专栏", Color: "#00ff88"},
	{Key: "ai", Name: "AI技术", Color: "#ff006e"},
}

// DefaultCategoryKey is used when an article carries an unknown category.
const DefaultCategoryKey = "ta"

// CategoryByKey looks up a category, falling back to the default section.
func CategoryByKey(key string) Category {
	for _, c := range Categories {
		if c.Key == key {
			return c
		}
	}
	return CategoryByKey(DefaultCategoryKey)
}

// KnownCategory reports whether key names one of the fixed sections.
func KnownCategory(key string) bool {
	for _, c := range Categories {
		if c.Key == key {
			return true
		}
	}
	return false
}
