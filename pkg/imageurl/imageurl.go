// Package imageurl reconstructs the responsive variant set belonging to a stored
// thumbnail URL. Thumbnails written by the derivation pipeline share one base name
// and differ only in the trailing `-<size>.<format>` segment; anything else is a
// legacy asset and resolves to nil.
package imageurl

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
)

type FormatPaths struct {
	WebP string `json:"webp"`
	Avif string `json:"avif"`
}

type Set struct {
	Small  FormatPaths `json:"small"`
	Medium FormatPaths `json:"medium"`
	Large  FormatPaths `json:"large"`
}

var (
	variantSuffix = regexp.MustCompile(`-(small|medium|large)\.(webp|avif)$`)
	mediumWebP    = regexp.MustCompile(`-medium\.webp$`)
)

// Resolve returns the full variant set for an optimized thumbnail URL, or nil for
// a legacy asset that must be displayed verbatim.
func Resolve(thumbnailURL string) *Set {
	if thumbnailURL == "" {
		return nil
	}

	if !variantSuffix.MatchString(thumbnailURL) {
		return nil
	}

	base := Normalize(variantSuffix.ReplaceAllString(thumbnailURL, ""))

	return &Set{
		Small: FormatPaths{
			WebP: base + "-small.webp",
			Avif: base + "-small.avif",
		},
		Medium: FormatPaths{
			WebP: base + "-medium.webp",
			Avif: base + "-medium.avif",
		},
		Large: FormatPaths{
			WebP: base + "-large.webp",
			Avif: base + "-large.avif",
		},
	}
}

// Primary normalizes any recognized variant URL to the canonical medium webp form.
// Single-URL consumers store and render this one path.
func Primary(thumbnailURL string) string {
	if thumbnailURL == "" {
		return ""
	}

	if mediumWebP.MatchString(thumbnailURL) {
		return Normalize(thumbnailURL)
	}

	if variantSuffix.MatchString(thumbnailURL) {
		return Normalize(variantSuffix.ReplaceAllString(thumbnailURL, "-medium.webp"))
	}

	// Legacy asset, leave untouched
	return Normalize(thumbnailURL)
}

// SrcSet renders a srcset attribute value for one format of a resolved set.
func SrcSet(set *Set, format string) string {
	if set == nil {
		return ""
	}
	if format == "avif" {
		return fmt.Sprintf("%s 400w, %s 800w, %s 1200w", set.Small.Avif, set.Medium.Avif, set.Large.Avif)
	}
	return fmt.Sprintf("%s 400w, %s 800w, %s 1200w", set.Small.WebP, set.Medium.WebP, set.Large.WebP)
}

// Normalize rewrites plain http URLs to https unless the host is a loopback
// address. Storage endpoints reachable over both schemes would otherwise break
// pages served over https with mixed-content errors.
func Normalize(raw string) string {
	if !strings.HasPrefix(raw, "http://") {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	if isLocalHost(u.Hostname()) {
		return raw
	}

	u.Scheme = "https"
	return u.String()
}

func isLocalHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
