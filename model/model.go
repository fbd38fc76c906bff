package model

// NavigationItem is a static (label, path) pair rendered as a link.
type NavigationItem struct {
	Label string
	Path  string
}

// SocialLink points at an external profile, opened in a new browsing context.
type SocialLink struct {
	Title string
	URL   string
	Icon  string
}

const (
	LogoPath = "assets/img/brand-logo/stayEase-Logo.webp"
	LogoAlt  = "CompanyLogo"
)

var navigation = []NavigationItem{
	{Label: "Home", Path: "/"},
	{Label: "About", Path: "/about"},
	{Label: "Properties", Path: "/properties"},
	{Label: "Blog", Path: "/blog"},
	{Label: "Contact", Path: "/contact"},
}

var socials = []SocialLink{
	{Title: "Facebook", URL: "https://www.facebook.com/stayeasee?mibextid=ZbWKwL", Icon: "fa-facebook-f"},
	{Title: "Instagram", URL: "https://www.instagram.com/stayease_/", Icon: "fa-instagram"},
	{Title: "LinkedIn", URL: "https://www.linkedin.com/company/stayease/", Icon: "fa-linkedin"},
}

// Navigation returns a copy of the site navigation, so callers can't mutate the shared list.
func Navigation() []NavigationItem {
	out := make([]NavigationItem, len(navigation))
	copy(out, navigation)

	return out
}

// Socials returns a copy of the social media links.
func Socials() []SocialLink {
	out := make([]SocialLink, len(socials))
	copy(out, socials)

	return out
}
