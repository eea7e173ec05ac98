package markup

// Test-only exports for the individual pass functions.

//nolint:gochecknoglobals // Test-only exports
var (
	PassHeadings  = passHeadings
	PassBold      = passBold
	PassItalic    = passItalic
	PassLinks     = passLinks
	PassListItems = passListItems
	WrapListRuns  = wrapListRuns
)
