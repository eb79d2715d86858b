package authnote

import (
	"net/url"
	"strings"
	"testing"
)

const redirectURL = "https://sentry.io/orgredirect/organizations/:orgslug/settings/auth-tokens/"

func intPtr(i int) *int { return &i }

func TestKeywords_OrgSlug(t *testing.T) {
	projects := []Project{{OrgSlug: "acme"}, {OrgSlug: "globex"}}

	tests := []struct {
		name   string
		kw     Keywords
		want   string
		wantOK bool
	}{
		{"no user", Keywords{Projects: projects}, "", false},
		{"no projects", Keywords{User: true}, "", false},
		{"default first", Keywords{User: true, Projects: projects}, "acme", true},
		{"selected", Keywords{User: true, Projects: projects, Selected: intPtr(1)}, "globex", true},
		{"out of range", Keywords{User: true, Projects: projects, Selected: intPtr(5)}, "", false},
		{"empty slug", Keywords{User: true, Projects: []Project{{}}}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.kw.OrgSlug()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("OrgSlug() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTokenURL(t *testing.T) {
	urls := DefaultURLs()

	if got := TokenURL(nil, urls); got != redirectURL {
		t.Errorf("nil selection: got %q", got)
	}
	if got := TokenURL(Keywords{}, urls); got != redirectURL {
		t.Errorf("empty selection: got %q", got)
	}

	kw := Keywords{User: true, Projects: []Project{{OrgSlug: "acme"}}}
	if got, want := TokenURL(kw, urls), "https://sentry.io/settings/acme/auth-tokens/"; got != want {
		t.Errorf("TokenURL = %q, want %q", got, want)
	}
}

func TestNew_SignedOut(t *testing.T) {
	n := New(false, "/platforms/go/sourcemaps/", nil, DefaultURLs())

	if n.Level != LevelNote {
		t.Errorf("expected note level, got %q", n.Level)
	}
	want := "https://sentry.io/auth/login/?next=https%3A%2F%2Fdocs.sentry.io%2Fplatforms%2Fgo%2Fsourcemaps%2F"
	if n.LoginURL != want {
		t.Errorf("login URL = %q, want %q", n.LoginURL, want)
	}

	var b strings.Builder
	if err := n.Node().Render(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "sign in") || !strings.Contains(out, redirectURL) {
		t.Errorf("unexpected signed-out markup: %s", out)
	}
}

func TestNew_LoginNextEscaped(t *testing.T) {
	n := New(false, "/search/?q=a&b=c", nil, DefaultURLs())

	u, err := url.Parse(n.LoginURL)
	if err != nil {
		t.Fatalf("login URL does not parse: %v", err)
	}
	if got := u.Query(); len(got) != 1 || got.Get("next") != "https://docs.sentry.io/search/?q=a&b=c" {
		t.Errorf("next lost its query, got %v", got)
	}
}

func TestNew_SignedIn(t *testing.T) {
	kw := Keywords{User: true, Projects: []Project{{OrgSlug: "acme"}}}
	n := New(true, "/x/", kw, DefaultURLs())

	if n.Level != LevelWarning {
		t.Errorf("expected warning level, got %q", n.Level)
	}
	if n.LoginURL != "" {
		t.Errorf("signed-in note has no login link, got %q", n.LoginURL)
	}

	var b strings.Builder
	if err := n.Node().Render(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "make sure to copy it!") {
		t.Errorf("expected copy warning, got %s", out)
	}
	if !strings.Contains(out, "https://sentry.io/settings/acme/auth-tokens/") {
		t.Errorf("expected org token URL, got %s", out)
	}
	if strings.Contains(out, "sign in") {
		t.Errorf("signed-in note should not offer sign in: %s", out)
	}
}
