package ui

var (
	ShortHash    = shortHash
	PreviewQuery = previewQuery
	RenderAge    = renderAge
)
