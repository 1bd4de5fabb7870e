// Package features serves product-feature documentation: each feature
// carries descriptive copy and an ordered list of screenshots.
package features

import (
	"context"
	"sort"
)

// Screenshot is one image in a feature's walkthrough. Position orders the
// screenshots within their feature.
type Screenshot struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
	Position int    `json:"position"`
}

// Feature documents one product capability.
type Feature struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Tagline     string       `json:"tagline,omitempty"`
	Description string       `json:"description"`
	Screenshots []Screenshot `json:"screenshots,omitempty"`
}

// sortScreenshots puts every feature's screenshots in position order.
func sortScreenshots(features []Feature) {
	for i := range features {
		shots := features[i].Screenshots
		sort.SliceStable(shots, func(a, b int) bool {
			return shots[a].Position < shots[b].Position
		})
	}
}

// Uploader stores screenshot bytes and returns a public URL. The cloud
// upload mechanics live in the host application.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
