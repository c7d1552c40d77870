// Package etree exports stored creators as OPML, the subscription-list
// format feed readers import.
package etree

import (
	"io"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/subscan"
)

// Exporter writes OPML 2.0 documents listing creators' feeds.
type Exporter struct {
	// Now supplies the dateCreated header value. Defaults to time.Now;
	// overridable for deterministic tests.
	Now func() time.Time
}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{Now: time.Now}
}

// Export writes an OPML document with one outline per creator.
func (e *Exporter) Export(w io.Writer, creators []*subscan.Creator) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	opml := doc.CreateElement("opml")
	opml.CreateAttr("version", "2.0")

	head := opml.CreateElement("head")
	head.CreateElement("title").SetText("subscan subscriptions")
	head.CreateElement("dateCreated").SetText(e.Now().UTC().Format(time.RFC1123Z))

	body := opml.CreateElement("body")
	for _, c := range creators {
		outline := body.CreateElement("outline")
		outline.CreateAttr("type", "rss")
		outline.CreateAttr("text", c.Name)
		outline.CreateAttr("title", c.Name)
		outline.CreateAttr("xmlUrl", c.FeedURL)
		outline.CreateAttr("htmlUrl", c.SiteURL)
		if c.Category != "" {
			outline.CreateAttr("category", c.Category)
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
