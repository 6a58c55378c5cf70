package viewtypes

// ============================================================================
// SHARED CSS CLASS CONSTANTS
// Class names used by the page templates and matched by static/main.css.
// ============================================================================

// Main is the page root that carries the style custom properties.
var Main = "main"

// Sidebar is the aside container; SidebarOpen is added while it is open.
var Sidebar = "sidebar"
var SidebarOpen = "sidebar_open"

// Arrow is the toggle button; ArrowOpen mirrors the sidebar state.
var Arrow = "arrow"
var ArrowOpen = "arrow_open"

// Article is the section that consumes the custom properties.
var Article = "article"

// ButtonApply and ButtonClear style the form's submit and reset buttons.
var ButtonApply = "button button_apply"
var ButtonClear = "button button_clear"

// WithModifier joins a base class and a state modifier when on is true.
func WithModifier(base, modifier string, on bool) string {
	if !on {
		return base
	}
	return base + " " + modifier
}
