package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagPattern(t *testing.T) {
	t.Parallel()

	t.Run("plain content", func(t *testing.T) {
		t.Parallel()

		got, ok := titleTag.first("<title>Hello</title>")
		require.True(t, ok)
		assert.Equal(t, "Hello", got)
	})

	t.Run("CDATA content", func(t *testing.T) {
		t.Parallel()

		got, ok := titleTag.first("<title><![CDATA[Hello <b>there</b>]]></title>")
		require.True(t, ok)
		assert.Equal(t, "Hello <b>there</b>", got)
	})

	t.Run("attributes on the opening tag", func(t *testing.T) {
		t.Parallel()

		got, ok := linkTag.first(`<link rel="alternate">https://example.com</link>`)
		require.True(t, ok)
		assert.Equal(t, "https://example.com", got)
	})

	t.Run("case-insensitive tag names", func(t *testing.T) {
		t.Parallel()

		got, ok := pubDateTag.first("<pubdate>Mon, 01 Jan 2024</pubdate>")
		require.True(t, ok)
		assert.Equal(t, "Mon, 01 Jan 2024", got)
	})

	t.Run("content spanning lines", func(t *testing.T) {
		t.Parallel()

		got, ok := descriptionTag.first("<description>line one\nline two</description>")
		require.True(t, ok)
		assert.Equal(t, "line one\nline two", got)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		_, ok := titleTag.first("<description>no title here</description>")
		assert.False(t, ok)
	})

	t.Run("plain content with a literal closing tag stops early", func(t *testing.T) {
		t.Parallel()

		// Known limitation of non-greedy matching.
		got, ok := titleTag.first("<title>before</title>after</title>")
		require.True(t, ok)
		assert.Equal(t, "before", got)
	})
}

func TestAllBlocks(t *testing.T) {
	t.Parallel()

	t.Run("items in document order", func(t *testing.T) {
		t.Parallel()

		doc := "<channel><item>one</item><item>two</item></channel>"
		blocks := allBlocks(doc)
		require.Len(t, blocks, 2)
		assert.Contains(t, blocks[0], "one")
		assert.Contains(t, blocks[1], "two")
	})

	t.Run("falls back to entries when no items", func(t *testing.T) {
		t.Parallel()

		doc := "<feed><entry>one</entry><entry>two</entry></feed>"
		blocks := allBlocks(doc)
		require.Len(t, blocks, 2)
	})

	t.Run("items shadow entries", func(t *testing.T) {
		t.Parallel()

		doc := "<item>rss</item><entry>atom</entry>"
		blocks := allBlocks(doc)
		require.Len(t, blocks, 1)
		assert.Contains(t, blocks[0], "rss")
	})

	t.Run("block splitting stops at a literal closing tag inside CDATA", func(t *testing.T) {
		t.Parallel()

		// Known limitation of non-greedy block matching.
		doc := "<item><description><![CDATA[about the </item> element]]></description></item>"
		blocks := allBlocks(doc)
		require.Len(t, blocks, 1)
		assert.Equal(t, "<item><description><![CDATA[about the </item>", blocks[0])
	})

	t.Run("no blocks", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, allBlocks("<channel></channel>"))
	})
}

func TestHeadBefore(t *testing.T) {
	t.Parallel()

	t.Run("cuts at first item", func(t *testing.T) {
		t.Parallel()

		head := headBefore("<channel><title>Feed</title><item>x</item></channel>")
		assert.Equal(t, "<channel><title>Feed</title>", head)
	})

	t.Run("cuts at first entry", func(t *testing.T) {
		t.Parallel()

		head := headBefore("<feed><title>Feed</title><entry>x</entry></feed>")
		assert.Equal(t, "<feed><title>Feed</title>", head)
	})

	t.Run("whole document when no blocks", func(t *testing.T) {
		t.Parallel()

		doc := "<channel><title>Feed</title></channel>"
		assert.Equal(t, doc, headBefore(doc))
	})
}
