package models

// Strategy names the fallback tier that produced a [StorageRoot].
type Strategy string

const (
	// StrategyPrimary is the installation-derived application-data root.
	StrategyPrimary Strategy = "primary"
	// StrategyHome is the directory under the user's home/profile directory.
	StrategyHome Strategy = "home"
	// StrategyTemp is the directory under the OS temp dir. Only used when
	// explicitly enabled.
	StrategyTemp Strategy = "temp"
)

// StorageRoot is a resolved absolute directory plus the strategy that
// produced it. It is never persisted.
type StorageRoot struct {
	Dir      string   `json:"dir"`
	Strategy Strategy `json:"strategy"`
}

// StorageLocation describes where the credential file lives. It is returned to
// the render-side caller for display purposes.
type StorageLocation struct {
	FilePath  string   `json:"filePath"`
	Directory string   `json:"directory"`
	Strategy  Strategy `json:"strategy"`
}
