package mock

import "github.com/fwojciec/subscan"

var _ subscan.FeedParser = (*FeedParser)(nil)

// FeedParser is a mock implementation of subscan.FeedParser.
type FeedParser struct {
	ParseFn func(raw string) (*subscan.ParsedFeed, error)
}

func (p *FeedParser) Parse(raw string) (*subscan.ParsedFeed, error) {
	return p.ParseFn(raw)
}
