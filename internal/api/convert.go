package api

import (
	"prooflab/internal/commit"
	"prooflab/internal/gallery"
	"prooflab/internal/suggest"
)

// FromGallery converts a gallery record to its API representation.
func FromGallery(g *gallery.Gallery) GalleryView {
	if g == nil {
		return GalleryView{}
	}
	view := GalleryView{
		ID:         g.ID,
		Name:       g.Name,
		ClientName: g.ClientName,
	}
	if !g.CreatedAt.IsZero() {
		view.CreatedAt = g.CreatedAt.UTC().Format(dateTimeFormat)
	}
	return view
}

// FromGalleries converts a slice of gallery records into API DTOs.
func FromGalleries(galleries []*gallery.Gallery) []GalleryView {
	if len(galleries) == 0 {
		return nil
	}
	out := make([]GalleryView, 0, len(galleries))
	for _, g := range galleries {
		out = append(out, FromGallery(g))
	}
	return out
}

// FromAsset converts an asset record to its API representation.
func FromAsset(a *gallery.Asset) AssetView {
	if a == nil {
		return AssetView{}
	}
	view := AssetView{
		ID:           a.ID,
		Filename:     a.Filename,
		ThumbnailURL: a.ThumbnailURL,
		CollectionID: a.CollectionID,
	}
	if !a.CreatedAt.IsZero() {
		view.CreatedAt = a.CreatedAt.UTC().Format(dateTimeFormat)
	}
	return view
}

// FromAssets converts a slice of asset records into API DTOs.
func FromAssets(assets []*gallery.Asset) []AssetView {
	if len(assets) == 0 {
		return nil
	}
	out := make([]AssetView, 0, len(assets))
	for _, a := range assets {
		out = append(out, FromAsset(a))
	}
	return out
}

// FromCollection converts a collection record to its API representation.
func FromCollection(c *gallery.Collection) CollectionView {
	if c == nil {
		return CollectionView{}
	}
	view := CollectionView{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		CoverAssetID: c.CoverAssetID,
		SortOrder:    c.SortOrder,
	}
	if !c.CreatedAt.IsZero() {
		view.CreatedAt = c.CreatedAt.UTC().Format(dateTimeFormat)
	}
	return view
}

// FromCollections converts a slice of collection records into API DTOs.
func FromCollections(collections []*gallery.Collection) []CollectionView {
	if len(collections) == 0 {
		return nil
	}
	out := make([]CollectionView, 0, len(collections))
	for _, c := range collections {
		out = append(out, FromCollection(c))
	}
	return out
}

// FromSuggestion converts one engine suggestion to its transport shape.
func FromSuggestion(s suggest.Suggestion) SuggestionView {
	previews := make([]PreviewView, 0, len(s.Previews))
	for _, p := range s.Previews {
		previews = append(previews, PreviewView{AssetID: p.AssetID, ThumbnailURL: p.ThumbnailURL})
	}
	return SuggestionView{
		Type:        string(s.Type),
		Name:        s.Name,
		Description: s.Description,
		AssetIDs:    s.AssetIDs,
		PhotoCount:  s.PhotoCount,
		Previews:    previews,
	}
}

// FromAnalysis converts an analysis result into the API payload.
func FromAnalysis(galleryID string, analysis *suggest.Analysis) *AnalyzeResponse {
	if analysis == nil {
		return nil
	}
	suggestions := make([]SuggestionView, 0, len(analysis.Suggestions))
	for _, s := range analysis.Suggestions {
		suggestions = append(suggestions, FromSuggestion(s))
	}
	return &AnalyzeResponse{
		GalleryID:          galleryID,
		Suggestions:        suggestions,
		TotalUncategorized: analysis.TotalUncategorized,
		Message:            analysis.Message,
	}
}

// ToCommitRequest converts an apply request into the commit engine's shape.
func ToCommitRequest(req ApplyRequest) commit.Request {
	return commit.Request{
		Name:        req.Name,
		Description: req.Description,
		AssetIDs:    req.AssetIDs,
	}
}

// ToCommitRequests converts a batch of apply requests.
func ToCommitRequests(reqs []ApplyRequest) []commit.Request {
	out := make([]commit.Request, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, ToCommitRequest(r))
	}
	return out
}

// FromApplied converts a commit result into the API payload.
func FromApplied(applied *commit.Applied) *ApplyResponse {
	if applied == nil {
		return nil
	}
	return &ApplyResponse{
		CollectionID: applied.CollectionID,
		Name:         applied.Name,
		PhotoCount:   applied.PhotoCount,
	}
}

// FromBatchResult converts an apply-all ledger into the API payload.
func FromBatchResult(result *commit.BatchResult) *ApplyAllResponse {
	if result == nil {
		return nil
	}
	outcomes := make([]ApplyOutcome, 0, len(result.Results))
	for _, o := range result.Results {
		outcomes = append(outcomes, ApplyOutcome{
			Name:         o.Name,
			Success:      o.Success,
			Error:        o.Error,
			CollectionID: o.CollectionID,
			PhotoCount:   o.PhotoCount,
		})
	}
	return &ApplyAllResponse{
		Results:      outcomes,
		SuccessCount: result.SuccessCount,
		TotalCount:   result.TotalCount,
	}
}
