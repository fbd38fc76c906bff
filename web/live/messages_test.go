package live_test

import (
	"testing"

	"github.com/stayease/navbar/web/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    live.ClientEvent
		wantErr error
	}{
		{
			name: "scroll",
			in:   `{"type":"scroll","y":120.5}`,
			want: live.ClientEvent{Type: live.EventScroll, Y: 120.5},
		},
		{
			name: "scroll to top",
			in:   `{"type":"scroll","y":0}`,
			want: live.ClientEvent{Type: live.EventScroll, Y: 0},
		},
		{
			name:    "scroll without offset",
			in:      `{"type":"scroll"}`,
			wantErr: live.ErrNoOffset,
		},
		{
			name:    "scroll with null offset",
			in:      `{"type":"scroll","y":null}`,
			wantErr: live.ErrNoOffset,
		},
		{
			name: "toggle",
			in:   `{"type":"toggle"}`,
			want: live.ClientEvent{Type: live.EventToggle},
		},
		{
			name: "navigate",
			in:   `{"type":"navigate","path":"/properties"}`,
			want: live.ClientEvent{Type: live.EventNavigate, Path: "/properties"},
		},
		{
			name:    "relative path",
			in:      `{"type":"navigate","path":"blog"}`,
			wantErr: live.ErrBadPath,
		},
		{
			name:    "protocol-relative path",
			in:      `{"type":"navigate","path":"//evil.example"}`,
			wantErr: live.ErrBadPath,
		},
		{
			name:    "backslash path",
			in:      `{"type":"navigate","path":"/\\evil.example"}`,
			wantErr: live.ErrBadPath,
		},
		{
			name:    "unknown type",
			in:      `{"type":"resize"}`,
			wantErr: live.ErrUnknownEvent,
		},
		{
			name:    "missing type",
			in:      `{}`,
			wantErr: live.ErrUnknownEvent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := live.DecodeEvent([]byte(tc.in))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeEventMalformed(t *testing.T) {
	_, err := live.DecodeEvent([]byte(`{"type":`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not decode client event")
}

func TestValidPath(t *testing.T) {
	for _, p := range []string{"/", "/about", "/blog?page=2", "/properties#top"} {
		assert.True(t, live.ValidPath(p), p)
	}

	for _, p := range []string{"", "about", "//evil.example", "//evil.example/about", `/\evil.example`, "https://evil.example/", "javascript:alert(1)"} {
		assert.False(t, live.ValidPath(p), p)
	}
}
