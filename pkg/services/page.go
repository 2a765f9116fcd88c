package services

import (
	"time"

	"marinelle/pkg/models"
)

const (
	HighlightImages = 4
	GalleryImages   = 12
)

// HomeView is everything the home template needs.
type HomeView struct {
	Lang string
	Site models.Site

	Loading     bool
	Error       string
	Description string
	Highlights  []string
	Gallery     []string
	Year        int
}

// ShowContent reports whether the presentation, gallery and CTA sections render.
func (v HomeView) ShowContent() bool {
	return !v.Loading && v.Error == ""
}

// BuildHomeView maps a load state onto the page. Loading wins over an error,
// an error wins over data.
func BuildHomeView(site models.Site, state models.LoadState, tr Translator, now time.Time) HomeView {
	view := HomeView{
		Lang:        tr.Lang(),
		Site:        site,
		Description: tr.T(MsgFallback),
		Year:        now.Year(),
	}

	switch {
	case state.Loading():
		view.Loading = true
		return view
	case state.Error != "":
		view.Error = state.Error
		return view
	}

	if state.Data != nil {
		if state.Data.Description != "" {
			view.Description = state.Data.Description
		}
		view.Highlights = firstN(state.Data.Images, HighlightImages)
		view.Gallery = firstN(state.Data.Images, GalleryImages)
	}
	return view
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
