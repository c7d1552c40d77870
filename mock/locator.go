package mock

import "github.com/fwojciec/subscan"

var _ subscan.ImageLocator = (*ImageLocator)(nil)

// ImageLocator is a mock implementation of subscan.ImageLocator.
type ImageLocator struct {
	LocateFn func(html, baseURL, targetName string) string
}

func (l *ImageLocator) Locate(html, baseURL, targetName string) string {
	return l.LocateFn(html, baseURL, targetName)
}
