package screenshot

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/Pan-Binghong/family-constellation/internal/domain/analysis"
)

// Placeholder metadata reported for every decodable payload.
const (
	PlaceholderFormat = "PNG"
	PlaceholderMode   = "RGB"
)

var dataURIPrefix = regexp.MustCompile(`^data:image/[^;,]*;base64,`)

// Prober decodes screenshot payloads without looking at the pixels.
type Prober struct{}

func NewProber() *Prober { return &Prober{} }

// Probe strips a data:image/...;base64, prefix and base64-decodes the rest.
func (p *Prober) Probe(payload string) analysis.Probe {
	raw := StripDataURI(payload)
	raw = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, raw)
	if raw == "" {
		return analysis.Probe{Success: false, Error: analysis.ErrEmptyScreenshot.Error()}
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return analysis.Probe{Success: false, Error: err.Error()}
	}

	return analysis.Probe{
		Success:      true,
		Format:       PlaceholderFormat,
		Mode:         PlaceholderMode,
		DecodedBytes: len(data),
	}
}

// StripDataURI removes a leading data:image/<fmt>;base64, prefix if present.
func StripDataURI(payload string) string {
	return dataURIPrefix.ReplaceAllString(payload, "")
}
