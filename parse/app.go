package parse

import "log/slog"

// App describes the program an option table belongs to. It is plain data
// for help renderers; the engine never reads it.
type App struct {
	Name      string
	About     string
	Version   string
	Author    string
	Copyright string
}

// LogValue implements slog.LogValuer.
func (a App) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", a.Name),
		slog.String("version", a.Version),
	)
}
