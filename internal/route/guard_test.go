package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		authenticated bool
		initialized   bool
		want          Decision
	}{
		{
			name: "uninitialized shows loading only",
			path: PathRoot,
			want: Decision{Loading: true},
		},
		{
			name:        "anonymous on root sees decoration and CTA",
			path:        PathRoot,
			initialized: true,
			want:        Decision{ShowBackground: true, ShowLoginCTA: true},
		},
		{
			name:        "anonymous on login screen",
			path:        PathLogin,
			initialized: true,
			want:        Decision{},
		},
		{
			name:          "authenticated on root is sent home",
			path:          PathRoot,
			authenticated: true,
			initialized:   true,
			want:          Decision{RedirectTo: PathHome},
		},
		{
			name:          "authenticated on login is sent home",
			path:          PathLogin,
			authenticated: true,
			initialized:   true,
			want:          Decision{RedirectTo: PathHome},
		},
		{
			name:          "authenticated may stay on home",
			path:          PathHome,
			authenticated: true,
			initialized:   true,
			want:          Decision{},
		},
		{
			name:          "authenticated may stay on history",
			path:          PathHistory,
			authenticated: true,
			initialized:   true,
			want:          Decision{},
		},
		{
			name:          "authenticated may stay on map",
			path:          PathMap,
			authenticated: true,
			initialized:   true,
			want:          Decision{},
		},
		{
			name:          "no decoration for authenticated users",
			path:          PathHome,
			authenticated: true,
			initialized:   true,
			want:          Decision{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.path, tt.authenticated, tt.initialized)
			assert.Equal(t, tt.want, got)
		})
	}
}
