package gitlog

import (
	"testing"
)

func TestIsRemoteURL(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://github.com/owner/repo.git", true},
		{"http://example.com/owner/repo", true},
		{"git://example.com/owner/repo.git", true},
		{"git@github.com:owner/repo.git", true},
		{"/home/dev/projects/repo", false},
		{"./repo", false},
		{".", false},
	}
	for _, test := range tests {
		if got := IsRemoteURL(test.source); got != test.want {
			t.Errorf("IsRemoteURL(%q) = %v, want %v", test.source, got, test.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"https://github.com/octocat/hello-world.git", "octocat/hello-world"},
		{"git@github.com:octocat/hello-world.git", "octocat/hello-world"},
		{"git://example.com/org/tool", "org/tool"},
		{"/home/dev/projects/repo", "repo"},
		{"ftp://example.com/whatever", "ftp://example.com/whatever"},
	}
	for _, test := range tests {
		if got := DisplayName(test.source); got != test.want {
			t.Errorf("DisplayName(%q) = %q, want %q", test.source, got, test.want)
		}
	}
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOrg   string
		wantRepo  string
		expectErr bool
	}{
		{
			name:     "https with .git suffix",
			url:      "https://github.com/octocat/hello-world.git",
			wantOrg:  "octocat",
			wantRepo: "hello-world",
		},
		{
			name:     "https without suffix",
			url:      "https://gitlab.com/group/project",
			wantOrg:  "group",
			wantRepo: "project",
		},
		{
			name:     "ssh format",
			url:      "git@github.com:octocat/hello-world.git",
			wantOrg:  "octocat",
			wantRepo: "hello-world",
		},
		{
			name:     "git protocol",
			url:      "git://example.com/org/tool.git",
			wantOrg:  "org",
			wantRepo: "tool",
		},
		{
			name:      "unrecognized",
			url:       "ftp://example.com/whatever",
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			org, repo, err := ParseRepoURL(test.url)
			if test.expectErr {
				if err == nil {
					t.Fatalf("expected error for %q", test.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if org != test.wantOrg || repo != test.wantRepo {
				t.Errorf("ParseRepoURL(%q) = (%q, %q), want (%q, %q)",
					test.url, org, repo, test.wantOrg, test.wantRepo)
			}
		})
	}
}
