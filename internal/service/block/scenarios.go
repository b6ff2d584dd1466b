package block

// Scenario is a canned block configuration for demo and manual-testing
// environments.
type Scenario struct {
	Name   string          `json:"name"`
	Blocks []ScenarioBlock `json:"blocks"`
}

// ScenarioBlock holds the content fields of one demo block.
type ScenarioBlock struct {
	Data            string `json:"data"`
	AllowJavascript bool   `json:"allow_javascript"`
}

// Scenarios returns the canned demo configurations.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:   "HTML block",
			Blocks: []ScenarioBlock{{}},
		},
		{
			Name: "HTML block with sanitized content",
			Blocks: []ScenarioBlock{
				{Data: "My custom <b>html</b>"},
			},
		},
		{
			Name: "HTML block with JavaScript",
			Blocks: []ScenarioBlock{
				{Data: "My custom <b>html</b><script>alert('With javascript');</script>", AllowJavascript: true},
			},
		},
		{
			Name: "HTML block with JavaScript not allowed",
			Blocks: []ScenarioBlock{
				{Data: "My custom <b>html</b><script>alert('With javascript');</script>", AllowJavascript: false},
			},
		},
		{
			Name:   "Multiple HTML blocks",
			Blocks: []ScenarioBlock{{}, {}, {}},
		},
	}
}
