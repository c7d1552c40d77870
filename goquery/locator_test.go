package goquery_test

import (
	"testing"

	"github.com/fwojciec/subscan/goquery"
	"github.com/stretchr/testify/assert"
)

const base = "https://jane.substack.com"

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	l := goquery.NewLocator()

	t.Run("picture block wins over everything else", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<meta property="og:image" content="https://cdn.example.com/og.jpg">
		</head><body>
			<img src="https://cdn.example.com/bare.jpg" alt="avatar">
			<picture>
				<source srcset="https://cdn.example.com/pic-300.jpg 300w">
				<img src="https://cdn.example.com/pic.jpg" alt="Jane Doe avatar">
			</picture>
		</body></html>`

		got := l.Locate(html, base, "Jane Doe")
		assert.Equal(t, "https://cdn.example.com/pic.jpg", got)
	})

	t.Run("highest scored picture is preferred", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<picture><img src="/hero.jpg" alt="cover photo"></picture>
			<picture class="profile"><img src="/avatar.jpg" alt="avatar" width="112"></picture>
		</body>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://jane.substack.com/avatar.jpg", got)
	})

	t.Run("picture img srcset beats its src", func(t *testing.T) {
		t.Parallel()

		html := `<picture>
			<img srcset="/img-144.jpg 144w, /img-300.jpg 300w" src="/img.jpg" alt="avatar">
		</picture>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://jane.substack.com/img-300.jpg", got)
	})

	t.Run("picture falls back to source srcset", func(t *testing.T) {
		t.Parallel()

		html := `<picture>
			<source srcset="/source-300.jpg 300w">
			<img alt="avatar">
		</picture>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://jane.substack.com/source-300.jpg", got)
	})

	t.Run("bare img used when no picture yields a URL", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<img src="/banner.jpg" alt="site banner">
			<img src="/profile.jpg" alt="Jane Doe avatar" width="112">
		</body>`

		got := l.Locate(html, base, "Jane Doe")
		assert.Equal(t, "https://jane.substack.com/profile.jpg", got)
	})

	t.Run("target name match boosts candidates", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<img src="/other.jpg" alt="somebody else entirely here">
			<img src="/jane.jpg" alt="portrait of jane doe">
		</body>`

		got := l.Locate(html, base, "Jane Doe")
		assert.Equal(t, "https://jane.substack.com/jane.jpg", got)
	})

	t.Run("equal scores keep document order", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<img src="/first.jpg">
			<img src="/second.jpg">
		</body>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://jane.substack.com/first.jpg", got)
	})

	t.Run("JSON-LD image string", func(t *testing.T) {
		t.Parallel()

		html := `<head><script type="application/ld+json">
			{"@type": "NewsMediaOrganization", "image": "https://cdn.example.com/ld.jpg"}
		</script></head>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://cdn.example.com/ld.jpg", got)
	})

	t.Run("JSON-LD image object with url", func(t *testing.T) {
		t.Parallel()

		html := `<head><script type="application/ld+json">
			{"image": {"@type": "ImageObject", "url": "https://cdn.example.com/obj.jpg"}}
		</script></head>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://cdn.example.com/obj.jpg", got)
	})

	t.Run("JSON-LD publisher logo", func(t *testing.T) {
		t.Parallel()

		html := `<head><script type="application/ld+json">
			{"publisher": {"logo": {"url": "https://cdn.example.com/logo.jpg"}}}
		</script></head>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://cdn.example.com/logo.jpg", got)
	})

	t.Run("malformed JSON-LD skipped", func(t *testing.T) {
		t.Parallel()

		html := `<head>
			<script type="application/ld+json">{not json</script>
			<script type="application/ld+json">{"logo": "https://cdn.example.com/second.jpg"}</script>
		</head>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://cdn.example.com/second.jpg", got)
	})

	t.Run("og:image as last resort", func(t *testing.T) {
		t.Parallel()

		html := `<head><meta property="og:image" content="/og.jpg"></head>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://jane.substack.com/og.jpg", got)
	})

	t.Run("og:image via name attribute", func(t *testing.T) {
		t.Parallel()

		html := `<head><meta name="og:image" content="https://cdn.example.com/og.jpg"></head>`

		got := l.Locate(html, base, "")
		assert.Equal(t, "https://cdn.example.com/og.jpg", got)
	})

	t.Run("empty when no tier matches", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", l.Locate("<html><body><p>No images here.</p></body></html>", base, ""))
	})
}
