package components

var pages = map[string]PageContent{
	"/": {
		Title:   "StayEase",
		Heading: "Find your next stay",
		Lead:    "Hand-picked homes and apartments, ready when you are.",
	},
	"/about": {
		Title:   "About | StayEase",
		Heading: "About StayEase",
		Lead:    "We connect guests with property owners who care about the details.",
	},
	"/properties": {
		Title:   "Properties | StayEase",
		Heading: "Our properties",
		Lead:    "Browse every listing we manage, from city studios to family villas.",
	},
	"/blog": {
		Title:   "Blog | StayEase",
		Heading: "Blog",
		Lead:    "Travel notes, hosting tips and news from the team.",
	},
	"/contact": {
		Title:   "Contact | StayEase",
		Heading: "Contact us",
		Lead:    "Questions about a booking or listing your property? Get in touch.",
	},
}

// NotFoundContent is rendered for paths outside the site navigation.
var NotFoundContent = PageContent{
	Title:   "Not found | StayEase",
	Heading: "Page not found",
	Lead:    "The page you are looking for does not exist.",
}

// ContentFor returns the body for path and whether the path is a known page.
func ContentFor(path string) (PageContent, bool) {
	c, ok := pages[path]
	if !ok {
		return NotFoundContent, false
	}

	return c, true
}
