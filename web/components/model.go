package components

//go:generate go tool templ generate

import (
	"github.com/stayease/navbar/model"
	"github.com/stayease/navbar/navbar"
)

// NavbarContext is everything the navbar markup is derived from.
type NavbarContext struct {
	Snapshot navbar.Snapshot
	Items    []model.NavigationItem
	Socials  []model.SocialLink
}

// NewNavbarContext pairs a snapshot with the site's static links.
func NewNavbarContext(snap navbar.Snapshot) NavbarContext {
	return NavbarContext{
		Snapshot: snap,
		Items:    model.Navigation(),
		Socials:  model.Socials(),
	}
}

// PageContent is the body of one routed page.
type PageContent struct {
	Title   string
	Heading string
	Lead    string
}

// Page is a full document: head, navbar, body.
type Page struct {
	Navbar  NavbarContext
	Content PageContent
	// LiveURL is the websocket endpoint the client script connects to.
	LiveURL string
}
