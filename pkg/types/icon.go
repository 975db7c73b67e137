package types

// Icon is a presentation handle for a service glyph. The backend supplies
// icon names as free strings; only the names below are recognized, and
// everything else maps to IconActivity.
type Icon string

// Recognized service icons.
const (
	IconActivity Icon = "activity"
	IconBrain    Icon = "brain"
	IconCode     Icon = "code"
	IconCpu      Icon = "cpu"
	IconDatabase Icon = "database"
	IconGlobe    Icon = "globe"
	IconRocket   Icon = "rocket"
	IconSparkles Icon = "sparkles"
	IconUsers    Icon = "users"
	IconZap      Icon = "zap"
)

// iconsByName maps the server-recognized icon name set to handles.
// Keys match the backend's icon_name values.
var iconsByName = map[string]Icon{
	"Activity": IconActivity,
	"Brain":    IconBrain,
	"Code":     IconCode,
	"Cpu":      IconCpu,
	"Database": IconDatabase,
	"Globe":    IconGlobe,
	"Rocket":   IconRocket,
	"Sparkles": IconSparkles,
	"Users":    IconUsers,
	"Zap":      IconZap,
}

// IconForName resolves a server-supplied icon name to a handle.
// Unrecognized names, including the empty string, resolve to IconActivity.
func IconForName(name string) Icon {
	if icon, ok := iconsByName[name]; ok {
		return icon
	}
	return IconActivity
}
