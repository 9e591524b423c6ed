package gemini

import "google.golang.org/genai"

// Response schemas constrain Gemini's JSON output. They mirror the
// JSON schemas the output parser enforces; the parser remains the
// authority because schema-constrained decoding is best effort.

func rubricSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"title", "grade_level", "criterias", "feedback"},
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "Rubric title derived from the learning standard",
			},
			"grade_level": {
				Type:        genai.TypeString,
				Description: "The grade level the rubric is created for",
			},
			"criterias": {
				Type:        genai.TypeArray,
				Description: "The grading criteria for the rubric",
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"criteria", "criteria_description"},
					Properties: map[string]*genai.Schema{
						"criteria": {
							Type:        genai.TypeString,
							Description: "Name of the criterion",
						},
						"criteria_description": {
							Type:        genai.TypeArray,
							Description: "One entry per point on the scale",
							Items: &genai.Schema{
								Type:     genai.TypeObject,
								Required: []string{"points", "description"},
								Properties: map[string]*genai.Schema{
									"points": {
										Type:        genai.TypeString,
										Description: "Point label for this level",
									},
									"description": {
										Type:        genai.TypeArray,
										Description: "What student work looks like at this level",
										Items:       &genai.Schema{Type: genai.TypeString},
									},
								},
							},
						},
					},
				},
			},
			"feedback": {
				Type:        genai.TypeString,
				Description: "Model feedback on the generated rubric",
			},
		},
	}
}

func syllabusSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"course_title", "grade_level", "overview", "objectives", "schedule"},
		Properties: map[string]*genai.Schema{
			"course_title": {Type: genai.TypeString},
			"grade_level":  {Type: genai.TypeString},
			"instructor":   {Type: genai.TypeString},
			"overview":     {Type: genai.TypeString},
			"objectives": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"required_items": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"policies": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"grade_components": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"component", "weight"},
					Properties: map[string]*genai.Schema{
						"component": {Type: genai.TypeString},
						"weight":    {Type: genai.TypeString},
					},
				},
			},
			"schedule": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"unit", "topic", "timing"},
					Properties: map[string]*genai.Schema{
						"unit":   {Type: genai.TypeString},
						"topic":  {Type: genai.TypeString},
						"timing": {Type: genai.TypeString},
					},
				},
			},
		},
	}
}

func notesSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"title", "sections"},
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString},
			"sections": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
	}
}
