package rider

import (
	"os/user"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"empty string", "", ""},
		{"absolute", "/home/u/proj/App.sln", "/home/u/proj/App.sln"},
		{"placeholder prefix", "$USER_HOME$/proj/App.sln", "~/proj/App.sln"},
		{"placeholder only", "$USER_HOME$", "~"},
		{"double slash", "/home//u/proj", "/home/u/proj"},
		{"trailing slash", "$USER_HOME$/proj/", "~/proj"},
		{"dot segments", "/srv/./proj/./App.sln", "/srv/proj/App.sln"},
		{"keeps dot-dot", "$USER_HOME$/missing/../App.sln", "~/missing/../App.sln"},
		{"leading dot-dot", "../App.sln", "../App.sln"},
		{"current dir", "./", "."},
		{"root", "/", "/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, DisplayPath(tc.input))
		})
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"tilde only", "~", "/home/u"},
		{"tilde prefix", "~/proj/App.sln", "/home/u/proj/App.sln"},
		{"absolute", "/srv/App.sln", "/srv/App.sln"},
		{"unknown user", "~no-such-user-ridersearch/App.sln", "~no-such-user-ridersearch/App.sln"},
		{"tilde inside", "/srv/~/App.sln", "/srv/~/App.sln"},
		{"keeps dot-dot", "~/missing/../App.sln", "/home/u/missing/../App.sln"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ExpandHome(tc.input, "/home/u"))
		})
	}
}

func TestExpandHome_TrailingSlashHome(t *testing.T) {
	assert.Equal(t, "/home/u/App.sln", ExpandHome("~/App.sln", "/home/u/"))
	assert.Equal(t, "/App.sln", ExpandHome("~/App.sln", "/"))
}

func TestExpandHome_NamedUser(t *testing.T) {
	u, err := user.Current()
	if err != nil || u.Username == "" || u.HomeDir == "" {
		t.Skip("current user not resolvable")
	}

	assert.Equal(t, u.HomeDir, ExpandHome("~"+u.Username, "/home/u"))
	assert.Equal(t, strings.TrimSuffix(u.HomeDir, "/")+"/proj/App.sln", ExpandHome("~"+u.Username+"/proj/App.sln", "/home/u"))
}
