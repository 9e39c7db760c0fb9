package ui

// Icon glyphs for setting rows.
const (
	IconTheme     = "◐"
	IconListStyle = "☰"
	IconNextToken = "⏭"
	IconSearch    = "⌕"
	IconCloudOff  = "☁"
)
