package dto

// VariantKey identifies one encoded artifact of a source image.
type VariantKey struct {
	Size   string // small | medium | large
	Format string // webp | avif
}

type VariantPaths struct {
	WebP string `json:"webp"`
	Avif string `json:"avif"`
}

// VariantSet holds the six storage-relative paths derived from one source image.
// All paths share a single base filename; only the -<size>.<ext> suffix differs.
type VariantSet struct {
	Small  VariantPaths `json:"small"`
	Medium VariantPaths `json:"medium"`
	Large  VariantPaths `json:"large"`
}

func (s *VariantSet) SetPath(key VariantKey, path string) {
	var fp *VariantPaths
	switch key.Size {
	case "small":
		fp = &s.Small
	case "medium":
		fp = &s.Medium
	case "large":
		fp = &s.Large
	default:
		return
	}
	if key.Format == "avif" {
		fp.Avif = path
	} else {
		fp.WebP = path
	}
}

// Primary returns the canonical single-URL form, medium webp.
func (s *VariantSet) Primary() string {
	return s.Medium.WebP
}
