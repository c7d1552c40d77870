package subscan

import (
	"sort"
	"strconv"
	"strings"
)

// Preferred width band for profile images. Candidates inside the band are
// large enough to display crisply but avoid multi-megabyte hero images.
const (
	MinPreferredWidth = 256
	MaxPreferredWidth = 512
)

// MinPreferredDPR is the device-pixel-ratio threshold used when a srcset
// carries only density descriptors.
const MinPreferredDPR = 2.0

// ImageCandidate is one URL entry parsed from a srcset attribute.
// Width is 0 when the descriptor was absent or density-based; DPR is 0
// when no density descriptor was present.
type ImageCandidate struct {
	URL   string
	Width int
	DPR   float64
}

// ParseSrcset parses an HTML srcset attribute value into its candidates.
// Entries are comma-separated "URL descriptor" pairs where the descriptor
// is either "<int>w" or "<float>x". Malformed entries are skipped.
func ParseSrcset(srcset string) []ImageCandidate {
	var candidates []ImageCandidate

	for _, entry := range strings.Split(srcset, ",") {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}

		c := ImageCandidate{URL: fields[0]}
		if len(fields) > 1 {
			desc := strings.ToLower(fields[1])
			switch {
			case strings.HasSuffix(desc, "w"):
				if w, err := strconv.Atoi(strings.TrimSuffix(desc, "w")); err == nil {
					c.Width = w
				}
			case strings.HasSuffix(desc, "x"):
				if d, err := strconv.ParseFloat(strings.TrimSuffix(desc, "x"), 64); err == nil {
					c.DPR = d
				}
			}
		}
		candidates = append(candidates, c)
	}

	return candidates
}

// PickBestSrc parses a srcset value and returns the best candidate URL
// resolved against baseURL, or "" if the srcset yields no candidates.
//
// Width descriptors take precedence: candidates are sorted ascending by
// width and the first one inside the preferred band wins, falling back to
// the largest width. Without widths, density descriptors are sorted
// ascending and the first with DPR >= 2 wins, falling back to the largest
// density. Descriptor-less candidates are used only when nothing else is
// available.
func PickBestSrc(srcset, baseURL string) string {
	candidates := ParseSrcset(srcset)
	if len(candidates) == 0 {
		return ""
	}

	var withWidth, withDPR []ImageCandidate
	for _, c := range candidates {
		if c.Width > 0 {
			withWidth = append(withWidth, c)
		} else if c.DPR > 0 {
			withDPR = append(withDPR, c)
		}
	}

	switch {
	case len(withWidth) > 0:
		sort.SliceStable(withWidth, func(i, j int) bool { return withWidth[i].Width < withWidth[j].Width })
		for _, c := range withWidth {
			if c.Width >= MinPreferredWidth && c.Width <= MaxPreferredWidth {
				return AbsoluteURL(baseURL, c.URL)
			}
		}
		return AbsoluteURL(baseURL, withWidth[len(withWidth)-1].URL)

	case len(withDPR) > 0:
		sort.SliceStable(withDPR, func(i, j int) bool { return withDPR[i].DPR < withDPR[j].DPR })
		for _, c := range withDPR {
			if c.DPR >= MinPreferredDPR {
				return AbsoluteURL(baseURL, c.URL)
			}
		}
		return AbsoluteURL(baseURL, withDPR[len(withDPR)-1].URL)
	}

	return AbsoluteURL(baseURL, candidates[0].URL)
}
