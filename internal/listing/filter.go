package listing

import (
	"fmt"
	"net/url"
	"strings"
)

// FilterByCategory keeps results whose category matches, ignoring case.
// An empty category keeps everything. The input slice is not modified.
func FilterByCategory(items []SearchResult, category string) []SearchResult {
	category = strings.TrimSpace(category)
	if category == "" {
		return items
	}

	out := make([]SearchResult, 0, len(items))
	for _, it := range items {
		if strings.EqualFold(string(it.Category), category) {
			out = append(out, it)
		}
	}
	return out
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// CategoryFor maps the veg toggle used by the add-dish form.
func CategoryFor(isVeg bool) Category {
	if isVeg {
		return CategoryVeg
	}
	return CategoryNonVeg
}

// ComposeDescription appends quantity and pickup time to a dish description.
func ComposeDescription(description, quantity, pickupTime string) string {
	description = strings.TrimSpace(description)
	quantity = strings.TrimSpace(quantity)
	pickupTime = strings.TrimSpace(pickupTime)
	if quantity == "" && pickupTime == "" {
		return description
	}
	return fmt.Sprintf("%s\n\nQuantity: %s\nPickup Time: %s", description, quantity, pickupTime)
}

// ValidateImageURL accepts absolute http(s) URLs. Browser-local blob: URLs
// are rejected since nobody else can load them.
func ValidateImageURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "blob:") {
		return ErrInvalidImage
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidImage
	}
	return nil
}
