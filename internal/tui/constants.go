package tui

import "time"

// Widget text
const (
	windowTitle    = "restget"
	labelURL       = "Enter URL:"
	labelSend      = "Send"
	labelResponse  = "Response:"
	urlPlaceholder = "https://httpbin.org/get"
)

// UI Layout Constants
const (
	// App padding around the whole column
	AppPaddingVertical   = 1
	AppPaddingHorizontal = 2

	// Width consumed by a rounded border
	BorderWidth = 2

	// Horizontal padding inside the field and response boxes
	BoxPaddingHorizontal = 1

	// Lines used by everything except the response viewport:
	// app padding (2) + URL label (1) + field (3) + button (3) +
	// response label (1) + response border (2) + status bar (1)
	MainViewHeightOffset = 13

	// Terminal size assumed until the first tea.WindowSizeMsg
	DefaultWidth  = 80
	DefaultHeight = 24

	// Smallest sizes the widgets shrink to
	MinInputWidth     = 10
	MinViewportWidth  = 10
	MinViewportHeight = 1

	// Footer messages
	StatusMaxLength = 100
	MessageTimeout  = 3 * time.Second
)
