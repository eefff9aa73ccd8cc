package types

// Section names one of the three association sections of a mimeapps.list file
type Section string

const (
	SectionDefaults Section = "Default Applications"
	SectionAdded    Section = "Added Associations"
	SectionRemoved  Section = "Removed Associations"
)

// Sections lists the association sections in the order they are written
var Sections = []Section{SectionDefaults, SectionAdded, SectionRemoved}

// Status describes one (content type, application) pair.
// It is derived on every query and never persisted.
type Status struct {
	// Disabled is set when the pair is listed under Removed Associations.
	Disabled bool `json:"disabled" yaml:"disabled"`
	// Custom is set when the pair comes from Added Associations.
	Custom bool `json:"custom" yaml:"custom"`
	// Default is set when the application is the resolved default for the type.
	Default bool `json:"default" yaml:"default"`
}
