package components

import (
	"net/url"
	"strings"
)

// classNames joins the non-empty class lists with a space.
func classNames(classes ...string) string {
	nonEmpty := make([]string, 0, len(classes))

	for _, c := range classes {
		if c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}

	return strings.Join(nonEmpty, " ")
}

// headerClass fades the fixed header in or out.
func headerClass(visible bool) string {
	opacity := "opacity-0"
	if visible {
		opacity = "opacity-100"
	}

	return classNames(
		"bg-[#000000] border-b-2 border-[#eba312] shadow fixed w-full top-0 z-[100] transition-opacity duration-300",
		opacity,
	)
}

// desktopLinkClass returns the classes for a link in the desktop list.
func desktopLinkClass(active bool) string {
	if active {
		return classNames("text-[0.9rem] lg:text-[1rem] text-[#eba312]", "rounded-md px-3 py-2 font-medium")
	}

	return classNames("text-[0.9rem] lg:text-[1rem] text-white hover:text-[#eba312]", "rounded-md px-3 py-2 font-medium")
}

// mobileLinkClass returns the classes for a link in the collapsible panel.
func mobileLinkClass(active bool) string {
	if active {
		return classNames("bg-[#282b38] text-[#eba312]", "block rounded-md px-3 py-2 text-[1rem] font-medium")
	}

	return classNames("text-white hover:bg-[#282b38] hover:text-[#eba312]", "block rounded-md px-3 py-2 text-[1rem] font-medium")
}

// mobilePanelClass shows or hides the collapsible panel. It is always hidden on md+ screens.
func mobilePanelClass(open bool) string {
	if open {
		return classNames("block", "md:hidden")
	}

	return classNames("hidden", "md:hidden")
}

// menuToggleHref is where the menu button leads when scripts are off: the same page
// with the menu flipped.
func menuToggleHref(path string, open bool) string {
	if open {
		return path
	}

	q := url.Values{}
	q.Set("menu", "open")

	return path + "?" + q.Encode()
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
