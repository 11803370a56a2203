package config

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Action      string
	Description string
}

// Actions dispatched by the keyboard handler.
const (
	ActionQuit         = "quit"
	ActionStopGravity  = "stop_gravity"
	ActionToggleLogs   = "toggle_logs"
	ActionToggleHelp   = "toggle_help"
	ActionNextSlider   = "next_slider"
	ActionPrevSlider   = "prev_slider"
	ActionNudgeLeft    = "nudge_left"
	ActionNudgeRight   = "nudge_right"
	ActionNudgeUp      = "nudge_up"
	ActionNudgeDown    = "nudge_down"
	ActionScrollLogsUp = "scroll_logs_up"
	ActionScrollLogsDn = "scroll_logs_down"
)

// Keybindings is the fixed key map. The first key of an action is the one
// shown in the help footer.
var Keybindings = []Keybinding{
	{"q", ActionQuit, "Quit"},
	{"ctrl+c", ActionQuit, "Quit"},
	{"s", ActionStopGravity, "Stop gravity"},
	{"L", ActionToggleLogs, "Toggle log viewer"},
	{"?", ActionToggleHelp, "Toggle help"},
	{"tab", ActionNextSlider, "Next slider"},
	{"shift+tab", ActionPrevSlider, "Previous slider"},
	{"left", ActionNudgeLeft, "Nudge handle left"},
	{"h", ActionNudgeLeft, "Nudge handle left"},
	{"right", ActionNudgeRight, "Nudge handle right"},
	{"l", ActionNudgeRight, "Nudge handle right"},
	{"up", ActionNudgeUp, "Nudge handle up"},
	{"k", ActionNudgeUp, "Nudge handle up"},
	{"down", ActionNudgeDown, "Nudge handle down"},
	{"j", ActionNudgeDown, "Nudge handle down"},
	{"pgup", ActionScrollLogsUp, "Scroll logs up"},
	{"pgdown", ActionScrollLogsDn, "Scroll logs down"},
}

// ActionForKey returns the action bound to a key, or "" when unbound.
func ActionForKey(key string) string {
	for _, kb := range Keybindings {
		if kb.Key == key {
			return kb.Action
		}
	}
	return ""
}

// HelpKeybindings returns one binding per action, in declaration order,
// for the help footer and the keys listing.
func HelpKeybindings() []Keybinding {
	seen := make(map[string]bool)
	var out []Keybinding
	for _, kb := range Keybindings {
		if seen[kb.Action] {
			continue
		}
		seen[kb.Action] = true
		out = append(out, kb)
	}
	return out
}
