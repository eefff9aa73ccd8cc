// Package display holds the results of appsel commands in a
// presentation-neutral form, and turns them into tables.
package display

// Type status labels
const (
	StatusUserDefined = "User defined"
	StatusAutomatic   = "Automatic"
)

// TypeRow is one content type in a listing
type TypeRow struct {
	Type       string   `json:"type" yaml:"type"`
	Comment    string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	// Explicit is set when the user chose the default in the writable layer
	Explicit    bool   `json:"explicit" yaml:"explicit"`
	Status      string `json:"status" yaml:"status"`
	DefaultApp  string `json:"default_app,omitempty" yaml:"default_app,omitempty"`
	DefaultName string `json:"default_name,omitempty" yaml:"default_name,omitempty"`
}

// TypesResult lists content types and their defaults
type TypesResult struct {
	Types []TypeRow `json:"types" yaml:"types"`
}

// CandidateRow is one application offered for a content type
type CandidateRow struct {
	App      string `json:"app" yaml:"app"`
	Name     string `json:"name" yaml:"name"`
	Disabled bool   `json:"disabled" yaml:"disabled"`
	Custom   bool   `json:"custom" yaml:"custom"`
	Default  bool   `json:"default" yaml:"default"`
}

// CandidatesResult lists the applications for one content type
type CandidatesResult struct {
	Type       string         `json:"type" yaml:"type"`
	Comment    string         `json:"comment,omitempty" yaml:"comment,omitempty"`
	Explicit   bool           `json:"explicit" yaml:"explicit"`
	DefaultApp string         `json:"default_app,omitempty" yaml:"default_app,omitempty"`
	Candidates []CandidateRow `json:"candidates" yaml:"candidates"`
}

// AppRow is one installed application
type AppRow struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Path      string `json:"path" yaml:"path"`
	Shown     bool   `json:"shown" yaml:"shown"`
	MimeTypes int    `json:"mime_types" yaml:"mime_types"`
}

// AppsResult lists installed applications
type AppsResult struct {
	Apps []AppRow `json:"apps" yaml:"apps"`
}

// AppTypeRow is one content type handled by an application
type AppTypeRow struct {
	Type     string `json:"type" yaml:"type"`
	Comment  string `json:"comment,omitempty" yaml:"comment,omitempty"`
	Disabled bool   `json:"disabled" yaml:"disabled"`
	Custom   bool   `json:"custom" yaml:"custom"`
	Default  bool   `json:"default" yaml:"default"`
}

// AppTypesResult lists the content types of one application
type AppTypesResult struct {
	App   string       `json:"app" yaml:"app"`
	Name  string       `json:"name" yaml:"name"`
	Path  string       `json:"path" yaml:"path"`
	Types []AppTypeRow `json:"types" yaml:"types"`
}

// LayerPath is one mimeapps.list layer
type LayerPath struct {
	Path     string `json:"path" yaml:"path"`
	Exists   bool   `json:"exists" yaml:"exists"`
	Writable bool   `json:"writable" yaml:"writable"`
}

// PathsResult shows where appsel reads and writes
type PathsResult struct {
	Config       string      `json:"config" yaml:"config"`
	Desktops     []string    `json:"desktops" yaml:"desktops"`
	Layers       []LayerPath `json:"layers" yaml:"layers"`
	Caches       []string    `json:"caches" yaml:"caches"`
	Applications []string    `json:"applications" yaml:"applications"`
	Mime         []string    `json:"mime" yaml:"mime"`
}

// MutationResult reports one change request
type MutationResult struct {
	Action  string `json:"action" yaml:"action"`
	Type    string `json:"type" yaml:"type"`
	App     string `json:"app,omitempty" yaml:"app,omitempty"`
	Changed bool   `json:"changed" yaml:"changed"`
	Path    string `json:"path" yaml:"path"`
}

// MutationsResult reports a batch of change requests
type MutationsResult struct {
	Results []MutationResult `json:"results" yaml:"results"`
}
