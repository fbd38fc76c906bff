package live

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/stayease/navbar/logging"
	"github.com/stayease/navbar/navbar"
	cs "github.com/stayease/navbar/web/components"
	"github.com/stayease/navbar/web/metrics"
)

// Conn is the part of *websocket.Conn a session needs.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	Close() error
}

// Session is one browser tab: a mounted navbar fed by the tab's scroll offsets,
// menu clicks and route changes. Run is its only event loop.
type Session struct {
	ID string

	conn    Conn
	navbar  *navbar.Navbar
	scroll  *navbar.Broadcaster
	metrics *metrics.Metrics

	// changes collected while handling one event, flushed as a single patch
	dirty       bool
	markupDirty bool
	lastKind    navbar.ChangeKind
}

// NewSession creates a session for a tab currently showing path, with the mobile menu
// as the tab last rendered it. m may be nil.
func NewSession(conn Conn, path string, menuOpen bool, m *metrics.Metrics) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		conn:    conn,
		scroll:  navbar.NewBroadcaster(),
		metrics: m,
	}
	s.navbar = navbar.New(path, s.onChange, navbar.WithMenuOpen(menuOpen))

	return s
}

func (s *Session) onChange(kind navbar.ChangeKind, _ navbar.Snapshot) {
	s.dirty = true
	s.lastKind = kind

	if kind != navbar.ChangeVisibility {
		s.markupDirty = true
	}
}

// Snapshot returns the navbar state. Only call it from the goroutine running Run, or after Run returned.
func (s *Session) Snapshot() navbar.Snapshot {
	return s.navbar.Snapshot()
}

// Run mounts the navbar, sends the initial state and processes client events until
// the connection fails or ctx is done. The navbar is always unmounted on return.
func (s *Session) Run(ctx context.Context) error {
	ctx = logging.SessionCtx(ctx, s.ID)

	s.navbar.Mount(s.scroll)
	defer s.navbar.Unmount()

	slog.InfoContext(ctx, "Live session started", "path", s.navbar.Snapshot().Path)

	// The first patch always carries markup, so a page rendered before this session
	// existed (or by a previous one) is brought in line with the session state.
	initial, err := s.markupPatch(ctx)
	if err != nil {
		return err
	}

	if err := s.send(initial); err != nil {
		return err
	}

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || isClosed(err) {
				slog.InfoContext(ctx, "Live session ended")

				return nil
			}

			return fmt.Errorf("could not read from session %s: %w", s.ID, err)
		}

		ev, err := DecodeEvent(data)
		if err != nil {
			slog.WarnContext(ctx, "Rejected client event", "error", err)
			s.countEvent("invalid")

			if err := s.send(ServerMessage{Type: MessageError, Error: err.Error()}); err != nil {
				return err
			}

			continue
		}

		s.countEvent(ev.Type)
		s.dispatch(ev)

		if err := s.flush(ctx); err != nil {
			return err
		}
	}
}

func (s *Session) dispatch(ev ClientEvent) {
	switch ev.Type {
	case EventScroll:
		s.scroll.Publish(ev.Y)
	case EventToggle:
		s.navbar.Toggle()
	case EventNavigate:
		s.navbar.Navigate(ev.Path)
	}
}

func (s *Session) flush(ctx context.Context) error {
	if !s.dirty {
		return nil
	}

	msg := s.patch()
	if s.markupDirty {
		var err error

		msg, err = s.markupPatch(ctx)
		if err != nil {
			return err
		}
	}

	kind := s.lastKind
	s.dirty, s.markupDirty = false, false

	if err := s.send(msg); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.PatchesSent.WithLabelValues(kind.String()).Inc()
	}

	return nil
}

func (s *Session) patch() ServerMessage {
	snap := s.navbar.Snapshot()

	return ServerMessage{
		Type:          MessagePatch,
		HeaderVisible: snap.HeaderVisible,
		MenuOpen:      snap.MenuOpen,
		Path:          snap.Path,
	}
}

func (s *Session) markupPatch(ctx context.Context) (ServerMessage, error) {
	msg := s.patch()

	html, err := renderNavbar(ctx, s.navbar.Snapshot())
	if err != nil {
		return ServerMessage{}, err
	}

	msg.HTML = html

	return msg, nil
}

func (s *Session) send(msg ServerMessage) error {
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("could not write to session %s: %w", s.ID, err)
	}

	return nil
}

func (s *Session) countEvent(kind string) {
	if s.metrics != nil {
		s.metrics.LiveEvents.WithLabelValues(kind).Inc()
	}
}

func renderNavbar(ctx context.Context, snap navbar.Snapshot) (string, error) {
	var sb strings.Builder

	if err := cs.Navbar(cs.NewNavbarContext(snap)).Render(ctx, &sb); err != nil {
		return "", fmt.Errorf("could not render navbar: %w", err)
	}

	return sb.String(), nil
}
