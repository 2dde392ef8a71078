package orgscout_test

import (
	"testing"

	"github.com/fwojciec/orgscout"
	"github.com/stretchr/testify/assert"
)

func TestPlatformForURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want orgscout.Platform
		ok   bool
	}{
		{"https://www.facebook.com/bhsuchess", orgscout.PlatformFacebook, true},
		{"https://fb.me/bhsuchess", orgscout.PlatformFacebook, true},
		{"https://x.com/bhsuchess", orgscout.PlatformTwitter, true},
		{"https://twitter.com/bhsuchess", orgscout.PlatformTwitter, true},
		{"https://youtu.be/abc", orgscout.PlatformYouTube, true},
		{"https://www.tiktok.com/@bhsu", orgscout.PlatformTikTok, true},
		{"https://www.linkedin.com/company/bhsu", orgscout.PlatformLinkedIn, true},
		{"https://www.fedex.com/track", "", false},
		{"https://box.com/share", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			got, ok := orgscout.PlatformForURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSocialLinks(t *testing.T) {
	t.Parallel()

	links := orgscout.ResolveSocialLinks([]string{
		"/about",
		"https://facebook.com/first",
		"https://www.facebook.com/second",
		"https://x.com/bhsuchess",
		"https://instagram.com/bhsuchess",
		"#",
	}, "https://www.bhsu.edu/clubs/")

	assert.Equal(t, map[orgscout.Platform]string{
		orgscout.PlatformFacebook:  "https://facebook.com/first",
		orgscout.PlatformTwitter:   "https://x.com/bhsuchess",
		orgscout.PlatformInstagram: "https://instagram.com/bhsuchess",
	}, links)
}

func TestScanSocialHandles(t *testing.T) {
	t.Parallel()

	t.Run("cued handle", func(t *testing.T) {
		t.Parallel()

		got := orgscout.ScanSocialHandles("Follow us on Instagram: @bhsuchess", nil)

		assert.Equal(t, "https://www.instagram.com/bhsuchess", got[orgscout.PlatformInstagram])
	})

	t.Run("cued handle is not reused", func(t *testing.T) {
		t.Parallel()

		got := orgscout.ScanSocialHandles("Twitter @bhsu_chess", nil)

		assert.Equal(t, "https://twitter.com/bhsu_chess", got[orgscout.PlatformTwitter])
		assert.NotContains(t, got, orgscout.PlatformInstagram)
	})

	t.Run("plain text mention", func(t *testing.T) {
		t.Parallel()

		got := orgscout.ScanSocialHandles("Find us at facebook.com/bhsuchess.", nil)

		assert.Equal(t, "https://facebook.com/bhsuchess", got[orgscout.PlatformFacebook])
	})

	t.Run("bare handle fills instagram", func(t *testing.T) {
		t.Parallel()

		got := orgscout.ScanSocialHandles("Stay updated @bhsuchess", nil)

		assert.Equal(t, "https://www.instagram.com/bhsuchess", got[orgscout.PlatformInstagram])
	})

	t.Run("email is not a handle", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{
			"Email chess@bhsu.edu",
			"Chess Club. Email: chess @bhsu.edu",
			"Email chess (@bhsu.edu)",
		} {
			got := orgscout.ScanSocialHandles(text, nil)

			assert.Empty(t, got, text)
		}
	})

	t.Run("dotted handle is not a domain", func(t *testing.T) {
		t.Parallel()

		got := orgscout.ScanSocialHandles("Follow @bhsu.chess", nil)

		assert.Equal(t, "https://www.instagram.com/bhsu.chess", got[orgscout.PlatformInstagram])
	})

	t.Run("filled platforms kept", func(t *testing.T) {
		t.Parallel()

		filled := map[orgscout.Platform]string{
			orgscout.PlatformInstagram: "https://instagram.com/linked",
		}
		got := orgscout.ScanSocialHandles("@other", filled)

		assert.Equal(t, "https://instagram.com/linked", got[orgscout.PlatformInstagram])
		assert.Equal(t, "https://instagram.com/linked", filled[orgscout.PlatformInstagram])
	})
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	base := "https://www.bhsu.edu/clubs/"

	assert.Equal(t, "https://www.bhsu.edu/clubs/chess", orgscout.ResolveURL(base, "chess"))
	assert.Equal(t, "https://www.bhsu.edu/about", orgscout.ResolveURL(base, "/about"))
	assert.Equal(t, "https://example.com/x", orgscout.ResolveURL(base, "https://example.com/x"))
	assert.Empty(t, orgscout.ResolveURL(base, ""))
	assert.Empty(t, orgscout.ResolveURL(base, "#top"))
	assert.Empty(t, orgscout.ResolveURL(base, "javascript:void(0)"))
	assert.Empty(t, orgscout.ResolveURL(base, "data:image/png;base64,AAAA"))
}

func TestSameSite(t *testing.T) {
	t.Parallel()

	base := "https://www.bhsu.edu/clubs"

	assert.True(t, orgscout.SameSite(base, "https://bhsu.edu/chess"))
	assert.True(t, orgscout.SameSite(base, "https://clubs.bhsu.edu/chess"))
	assert.True(t, orgscout.SameSite(base, "/chess"))
	assert.False(t, orgscout.SameSite(base, "https://google.com"))
	assert.False(t, orgscout.SameSite(base, "mailto:chess@bhsu.edu"))
}
