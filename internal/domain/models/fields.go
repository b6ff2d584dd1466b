package models

// FieldScope is the persistence partition of a block field: content fields
// vary per placed instance, settings fields are per-deployment defaults.
type FieldScope string

const (
	ScopeContent  FieldScope = "content"
	ScopeSettings FieldScope = "settings"
)

// FieldType is the wire type of a block field.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldBoolean FieldType = "boolean"
)

// FieldOption is one selectable value for an enumerated field.
type FieldOption struct {
	DisplayName string `json:"display_name"`
	Value       string `json:"value"`
}

// FieldDef declares one persisted block field. The schema is a fixed,
// statically declared list; the host never discovers fields by reflection.
type FieldDef struct {
	Name        string        `json:"name"`
	Type        FieldType     `json:"type"`
	Scope       FieldScope    `json:"scope"`
	Default     any           `json:"default"`
	DisplayName string        `json:"display_name"`
	Help        string        `json:"help"`
	Values      []FieldOption `json:"values,omitempty"`
}

// BlockFields is the full persisted field schema of the HTML block.
var BlockFields = []FieldDef{
	{
		Name:        "display_name",
		Type:        FieldString,
		Scope:       ScopeSettings,
		Default:     "Text",
		DisplayName: "Display Name",
		Help:        "The display name for this component.",
	},
	{
		Name:    "data",
		Type:    FieldString,
		Scope:   ScopeContent,
		Default: "",
		Help:    "Html contents to display for this module",
	},
	{
		Name:        "allow_javascript",
		Type:        FieldBoolean,
		Scope:       ScopeContent,
		Default:     false,
		DisplayName: "Allow JavaScript execution",
		Help:        "Whether JavaScript should be allowed or not in this module",
	},
	{
		Name:        "editor",
		Type:        FieldString,
		Scope:       ScopeSettings,
		Default:     string(EditorVisual),
		DisplayName: "Editor",
		Help: "Select Visual to enter content and have the editor automatically create the HTML. " +
			"Select Raw to edit HTML directly. If you change this setting, you must save the " +
			"component and then re-open it for editing.",
		Values: []FieldOption{
			{DisplayName: "Visual", Value: string(EditorVisual)},
			{DisplayName: "Raw", Value: string(EditorRaw)},
		},
	},
}

// EditableFieldNames lists the fields exposed on the authoring form, in
// display order. The HTML body itself is edited through the content editor,
// not the settings form.
var EditableFieldNames = []string{"display_name", "editor", "allow_javascript"}

// FieldByName returns the schema entry for a field, or nil when the field
// is not declared.
func FieldByName(name string) *FieldDef {
	for i := range BlockFields {
		if BlockFields[i].Name == name {
			return &BlockFields[i]
		}
	}
	return nil
}

// NewBlock returns a block populated with the schema defaults.
func NewBlock(courseID string) *Block {
	return &Block{
		CourseID:        courseID,
		DisplayName:     "Text",
		Data:            "",
		Editor:          EditorVisual,
		AllowJavascript: false,
	}
}
