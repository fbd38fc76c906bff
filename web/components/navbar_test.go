package components_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stayease/navbar/model"
	"github.com/stayease/navbar/navbar"
	"github.com/stayease/navbar/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderNavbar(t *testing.T, snap navbar.Snapshot) string {
	t.Helper()

	var sb strings.Builder

	err := components.Navbar(components.NewNavbarContext(snap)).Render(context.Background(), &sb)
	require.NoError(t, err)

	return sb.String()
}

func TestNavbarActiveLink(t *testing.T) {
	for _, current := range model.Navigation() {
		t.Run(current.Label, func(t *testing.T) {
			html := renderNavbar(t, navbar.Snapshot{HeaderVisible: true, Path: current.Path})

			// desktop list and mobile panel each mark exactly one link
			assert.Equal(t, 2, strings.Count(html, `aria-current="page"`))
			assert.Equal(t, 2, strings.Count(html, `href="`+current.Path+`" aria-current="page"`))

			for _, other := range model.Navigation() {
				if other.Path == current.Path {
					continue
				}

				assert.NotContains(t, html, `href="`+other.Path+`" aria-current="page"`)
			}

			assert.Contains(t, html, `aria-current="page" class="text-[0.9rem] lg:text-[1rem] text-[#eba312] rounded-md px-3 py-2 font-medium"`)
			assert.Contains(t, html, `aria-current="page" class="bg-[#282b38] text-[#eba312] block rounded-md px-3 py-2 text-[1rem] font-medium"`)
		})
	}
}

func TestNavbarUnknownPathHasNoActiveLink(t *testing.T) {
	html := renderNavbar(t, navbar.Snapshot{HeaderVisible: true, Path: "/missing"})

	assert.NotContains(t, html, "aria-current")
}

func TestNavbarVisibility(t *testing.T) {
	visible := renderNavbar(t, navbar.Snapshot{HeaderVisible: true, Path: "/"})
	hidden := renderNavbar(t, navbar.Snapshot{HeaderVisible: false, Path: "/"})

	assert.Contains(t, visible, "opacity-100")
	assert.NotContains(t, visible, "opacity-0")
	assert.Contains(t, hidden, "opacity-0")
	assert.NotContains(t, hidden, "opacity-100")
}

func TestNavbarMobileMenu(t *testing.T) {
	tests := []struct {
		name       string
		open       bool
		panelClass string
		icon       string
		toggleHref string
	}{
		{
			name:       "closed",
			open:       false,
			panelClass: `data-navbar-panel class="hidden md:hidden"`,
			icon:       `data-icon="bars-3"`,
			toggleHref: `href="/about?menu=open"`,
		},
		{
			name:       "open",
			open:       true,
			panelClass: `data-navbar-panel class="block md:hidden"`,
			icon:       `data-icon="x-mark"`,
			toggleHref: `href="/about" aria-expanded="true"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			html := renderNavbar(t, navbar.Snapshot{HeaderVisible: true, MenuOpen: tc.open, Path: "/about"})

			assert.Contains(t, html, tc.panelClass)
			assert.Contains(t, html, tc.icon)
			assert.Contains(t, html, tc.toggleHref)
			assert.Equal(t, 1, strings.Count(html, "data-icon="))
		})
	}
}

func TestNavbarSocialLinks(t *testing.T) {
	html := renderNavbar(t, navbar.Snapshot{HeaderVisible: true, Path: "/"})

	for _, s := range model.Socials() {
		assert.Equal(t, 2, strings.Count(html, `href="`+strings.ReplaceAll(s.URL, "&", "&amp;")+`"`), s.Title)
	}

	assert.Equal(t, 2*len(model.Socials()), strings.Count(html, `target="_blank" rel="noopener noreferrer"`))
	assert.Contains(t, html, `alt="CompanyLogo" src="/assets/img/brand-logo/stayEase-Logo.webp"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestNavbarWriteError(t *testing.T) {
	err := components.Navbar(components.NewNavbarContext(navbar.Snapshot{})).Render(context.Background(), failingWriter{})

	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	content, ok := components.ContentFor("/blog")
	require.True(t, ok)

	var sb strings.Builder

	err := components.Layout(components.Page{
		Navbar:  components.NewNavbarContext(navbar.Snapshot{HeaderVisible: true, Path: "/blog"}),
		Content: content,
		LiveURL: "/live",
	}).Render(context.Background(), &sb)
	require.NoError(t, err)

	html := sb.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Blog | StayEase</title>")
	assert.Contains(t, html, `data-live-url="/live"`)
	assert.Contains(t, html, `id="site-navbar"`)
	assert.Contains(t, html, `id="page-content"`)
	assert.Contains(t, html, `src="/static/navbar.js"`)
}

func TestContentFor(t *testing.T) {
	for _, item := range model.Navigation() {
		_, ok := components.ContentFor(item.Path)
		assert.True(t, ok, item.Path)
	}

	content, ok := components.ContentFor("/nope")
	assert.False(t, ok)
	assert.Equal(t, components.NotFoundContent, content)
}
