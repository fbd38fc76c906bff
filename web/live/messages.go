package live

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
)

// Client event types.
const (
	EventScroll   = "scroll"
	EventToggle   = "toggle"
	EventNavigate = "navigate"
)

// Server message types.
const (
	MessagePatch = "patch"
	MessageError = "error"
)

var (
	ErrUnknownEvent = errors.New("unknown event type")
	ErrBadPath      = errors.New("path must be a site-local absolute path")
	ErrBadOffset    = errors.New("scroll offset must be finite")
	ErrNoOffset     = errors.New("scroll event without offset")
)

// ClientEvent is what the browser sends: a scroll offset, a menu button click or a route change.
type ClientEvent struct {
	Type string  `json:"type"`
	Y    float64 `json:"y"`
	Path string  `json:"path,omitempty"`
}

// ServerMessage is what the session sends back. HTML is set only when the navbar
// markup changed; visibility is applied client-side from HeaderVisible.
type ServerMessage struct {
	Type          string `json:"type"`
	HeaderVisible bool   `json:"headerVisible"`
	MenuOpen      bool   `json:"menuOpen"`
	Path          string `json:"path"`
	HTML          string `json:"html,omitempty"`
	Error         string `json:"error,omitempty"`
}

// wireEvent keeps a missing offset distinguishable from a scroll back to the top.
type wireEvent struct {
	Type string   `json:"type"`
	Y    *float64 `json:"y"`
	Path string   `json:"path"`
}

// DecodeEvent parses and validates one client message.
func DecodeEvent(data []byte) (ClientEvent, error) {
	var w wireEvent

	if err := json.Unmarshal(data, &w); err != nil {
		return ClientEvent{}, fmt.Errorf("could not decode client event: %w", err)
	}

	ev := ClientEvent{Type: w.Type, Path: w.Path}

	switch w.Type {
	case EventScroll:
		if w.Y == nil {
			return ClientEvent{}, ErrNoOffset
		}

		if math.IsNaN(*w.Y) || math.IsInf(*w.Y, 0) {
			return ClientEvent{}, ErrBadOffset
		}

		ev.Y = *w.Y
	case EventToggle:
	case EventNavigate:
		if !ValidPath(w.Path) {
			return ClientEvent{}, fmt.Errorf("%w: %q", ErrBadPath, w.Path)
		}
	default:
		return ClientEvent{}, fmt.Errorf("%w: %q", ErrUnknownEvent, w.Type)
	}

	return ev, nil
}

// ValidPath reports whether p is a site-local absolute path. Protocol-relative forms
// ("//host", "/\\host") would leave the site once written into an href.
func ValidPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}

	u, err := url.Parse(p)
	if err != nil {
		return false
	}

	return u.Scheme == "" && u.Host == ""
}
