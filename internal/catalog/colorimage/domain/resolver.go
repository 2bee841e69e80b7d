package domain

import (
	"strings"

	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
)

// ColorImageSet is the slice of an association row the resolver needs.
type ColorImageSet struct {
	ColorID int64
	Images  []string
}

// ResolveDisplayImages decides which ordered image list the storefront should
// render for a product given the currently selected color name.
//
// No selection, an unknown color, or a color without a usable override all
// fall back to the product's own images. The result is always a fresh slice;
// callers may mutate it without touching stored state.
func ResolveDisplayImages(productImages []string, sets []ColorImageSet, colors []colordomain.Color, selectedColorName string) []string {
	selected := strings.TrimSpace(selectedColorName)
	if selected == "" {
		return copyOf(productImages)
	}

	var colorID int64
	found := false
	for _, c := range colors {
		if c.MatchName(selected) {
			colorID = c.ID.Int64()
			found = true
			break
		}
	}
	if !found {
		return copyOf(productImages)
	}

	for _, set := range sets {
		if set.ColorID != colorID {
			continue
		}
		if len(set.Images) == 0 {
			break
		}
		return copyOf(set.Images)
	}

	return copyOf(productImages)
}

const dataImagePrefix = "data:image/"

// FirstValidImage picks the first image URL that looks renderable: either an
// inline data URI or an http(s) URL that is not hosted on a known placeholder
// domain. When nothing qualifies it returns the first entry verbatim rather
// than failing, and the empty string for an empty list.
func FirstValidImage(images []string, placeholderTokens []string) string {
	if len(images) == 0 {
		return ""
	}

	for _, img := range images {
		candidate := strings.TrimSpace(img)
		if candidate == "" {
			continue
		}
		if strings.HasPrefix(candidate, dataImagePrefix) {
			return candidate
		}
		if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
			if !containsToken(candidate, placeholderTokens) {
				return candidate
			}
		}
	}

	return images[0]
}

func containsToken(url string, tokens []string) bool {
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.Contains(url, token) {
			return true
		}
	}
	return false
}

func copyOf(images []string) []string {
	out := make([]string, len(images))
	copy(out, images)
	return out
}
