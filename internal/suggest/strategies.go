package suggest

import (
	"prooflab/internal/gallery"
	"prooflab/internal/metadata"
)

// bucket is one named group produced by a strategy. Buckets keep first-seen
// order so ranking ties stay stable across runs.
type bucket struct {
	key    string
	assets []*gallery.Asset
}

// collect partitions assets into buckets in a single linear pass,
// materializing groups in discovery order.
func collect(assets []*gallery.Asset, keyFunc func(*gallery.Asset) (string, bool)) []bucket {
	order := make([]string, 0)
	grouped := make(map[string][]*gallery.Asset)
	for _, asset := range assets {
		key, ok := keyFunc(asset)
		if !ok {
			continue
		}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], asset)
	}

	out := make([]bucket, 0, len(order))
	for _, key := range order {
		out = append(out, bucket{key: key, assets: grouped[key]})
	}
	return out
}

// groupByDate buckets assets by capture-date key. Assets without a parseable
// date land in the shared UnknownDate bucket.
func groupByDate(assets []*gallery.Asset) []bucket {
	return collect(assets, func(asset *gallery.Asset) (string, bool) {
		return metadata.CaptureDateKey(asset.Exif), true
	})
}

// groupByFilename buckets assets by lexical filename prefix. Assets with no
// extractable prefix contribute to no bucket.
func groupByFilename(assets []*gallery.Asset) []bucket {
	return collect(assets, func(asset *gallery.Asset) (string, bool) {
		return metadata.FilenamePrefix(asset.Filename)
	})
}

// groupByCamera buckets assets by camera key, including the UnknownCamera
// bucket; the ranker excludes it from suggestions.
func groupByCamera(assets []*gallery.Asset) []bucket {
	return collect(assets, func(asset *gallery.Asset) (string, bool) {
		return metadata.CameraKey(asset.Exif), true
	})
}
