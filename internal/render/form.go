package render

import (
	"fmt"

	"htmlblock/internal/domain/models"
)

// FormField is everything the authoring form template needs to render one
// editable field: its schema entry plus the block's current value and
// whether that value is still the schema default.
type FormField struct {
	models.FieldDef
	Value     any  `json:"value"`
	IsDefault bool `json:"is_default"`
}

// EditForm produces the authoring form descriptor for a block from the
// static field schema. It is a plain function of (schema, block); there is
// no registration or discovery step.
func EditForm(block *models.Block) ([]FormField, error) {
	fields := make([]FormField, 0, len(models.EditableFieldNames))

	for _, name := range models.EditableFieldNames {
		def := models.FieldByName(name)
		if def == nil {
			return nil, fmt.Errorf("field %s not declared in block schema", name)
		}
		if def.Scope != models.ScopeContent && def.Scope != models.ScopeSettings {
			return nil, fmt.Errorf("field %s: scope %s is not author-editable", name, def.Scope)
		}

		value := fieldValue(def.Name, block)
		fields = append(fields, FormField{
			FieldDef:  *def,
			Value:     value,
			IsDefault: value == def.Default,
		})
	}

	return fields, nil
}

func fieldValue(name string, block *models.Block) any {
	switch name {
	case "display_name":
		return block.DisplayName
	case "editor":
		return string(block.Editor)
	case "allow_javascript":
		return block.AllowJavascript
	case "data":
		return block.Data
	default:
		return nil
	}
}
