// Package messages models flash-message severities and their mapping onto
// GovBR-DS alert types.
package messages

// Level is a message severity. Values match the conventional framework
// constants so host adapters can pass them through unchanged.
type Level int

const (
	LevelDebug   Level = 10
	LevelInfo    Level = 20
	LevelSuccess Level = 25
	LevelWarning Level = 30
	LevelError   Level = 40
)

// Message is a single flash message queued for display.
type Message struct {
	Level Level
	Text  string
	// ExtraTags carries additional CSS classes attached by the host.
	ExtraTags string
}

var alertTypes = map[Level]string{
	LevelDebug:   "warning",
	LevelInfo:    "info",
	LevelSuccess: "success",
	LevelWarning: "warning",
	LevelError:   "danger",
}

// AlertType returns the alert style for a severity, defaulting to "info" for
// unknown levels.
func AlertType(level Level) string {
	if alertType, ok := alertTypes[level]; ok {
		return alertType
	}
	return "info"
}
