package models

// AppMetadata is returned by the get-app-metadata bridge operation.
type AppMetadata struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Platform    string `json:"platform"`
	Arch        string `json:"arch"`
	AppPath     string `json:"appPath"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
