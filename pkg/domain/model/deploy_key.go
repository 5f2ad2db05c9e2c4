package model

import "log/slog"

// DeployKey is an SSH key registered against a single repository
type DeployKey struct {
	ID        int64  `json:"id"`
	Key       string `json:"key" masq:"secret"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at"`
	ReadOnly  bool   `json:"read_only"`
}

// LogValue omits the key material.
func (x DeployKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("id", x.ID),
		slog.String("title", x.Title),
		slog.String("url", x.URL),
		slog.Bool("read_only", x.ReadOnly),
	)
}
