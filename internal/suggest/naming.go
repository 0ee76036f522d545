package suggest

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prooflab/internal/metadata"
)

// exifDateLayout matches the colon-separated date prefix stored by cameras.
const exifDateLayout = "2006:01:02"

var titleCaser = cases.Title(language.Und)

// dateName renders a capture-date key as a calendar date. Sentinel or
// unparseable keys come back verbatim.
func dateName(key string) string {
	ts, err := time.Parse(exifDateLayout, key)
	if err != nil {
		return key
	}
	return ts.Format("January 2, 2006")
}

// seriesName renders a filename prefix as a title-cased series name, with
// separator characters replaced by spaces.
func seriesName(prefix string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range prefix {
		switch {
		case r == '-' || r == '_':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		default:
			cleaned.WriteRune(r)
			prevSpace = false
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		title = prefix
	}
	return titleCaser.String(title) + " Series"
}

func (b bucket) dateSuggestion(limits Thresholds) Suggestion {
	name := dateName(b.key)
	description := fmt.Sprintf("%d photos taken on %s", len(b.assets), name)
	if b.key == metadata.UnknownDate {
		description = fmt.Sprintf("%d photos with no capture date", len(b.assets))
	}
	return b.suggestion(TypeDate, name, description, limits)
}

func (b bucket) filenameSuggestion(limits Thresholds) Suggestion {
	name := seriesName(b.key)
	description := fmt.Sprintf("%d photos matching the %q filename pattern", len(b.assets), b.key)
	return b.suggestion(TypeFilename, name, description, limits)
}

func (b bucket) cameraSuggestion(limits Thresholds) Suggestion {
	description := fmt.Sprintf("%d photos captured with %s", len(b.assets), b.key)
	return b.suggestion(TypeCamera, b.key, description, limits)
}

func (b bucket) suggestion(kind Type, name, description string, limits Thresholds) Suggestion {
	ids := make([]string, 0, len(b.assets))
	previews := make([]Preview, 0, limits.PreviewPhotos)
	for i, asset := range b.assets {
		ids = append(ids, asset.ID)
		if i < limits.PreviewPhotos {
			previews = append(previews, Preview{AssetID: asset.ID, ThumbnailURL: asset.ThumbnailURL})
		}
	}
	return Suggestion{
		Type:        kind,
		Name:        name,
		Description: description,
		AssetIDs:    ids,
		PhotoCount:  len(ids),
		Previews:    previews,
	}
}
