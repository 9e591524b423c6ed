// Package jsonschema validates raw model output against embedded JSON
// schemas before decoding it into domain types. Model output that fails
// schema validation is rejected with EINVALID so the pipeline retries
// instead of rendering a malformed artifact.
package jsonschema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/edugen"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Compile-time interface verification.
var (
	_ edugen.RubricParser   = (*Parser)(nil)
	_ edugen.SyllabusParser = (*Parser)(nil)
	_ edugen.NotesParser    = (*Parser)(nil)
)

// Parser validates and decodes structured model output.
type Parser struct {
	rubric   *jsonschema.Schema
	syllabus *jsonschema.Schema
	notes    *jsonschema.Schema
}

// NewParser compiles the embedded schemas.
func NewParser() (*Parser, error) {
	p := &Parser{}
	for _, s := range []struct {
		name   string
		target **jsonschema.Schema
	}{
		{"rubric", &p.rubric},
		{"syllabus", &p.syllabus},
		{"notes", &p.notes},
	} {
		schema, err := compileSchema(s.name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s schema: %w", s.name, err)
		}
		*s.target = schema
	}
	return p, nil
}

func compileSchema(name string) (*jsonschema.Schema, error) {
	filename := "schemas/" + name + ".schema.json"
	src, err := schemaFS.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(filename, bytes.NewReader(src)); err != nil {
		return nil, err
	}
	return compiler.Compile(filename)
}

// ParseRubric validates data against the rubric schema and decodes it.
func (p *Parser) ParseRubric(data []byte) (*edugen.Rubric, error) {
	cleaned, err := p.validate(p.rubric, data)
	if err != nil {
		return nil, err
	}
	var rubric edugen.Rubric
	if err := json.Unmarshal(cleaned, &rubric); err != nil {
		return nil, edugen.Errorf(edugen.EINVALID, "failed to decode rubric: %v", err)
	}
	return &rubric, nil
}

// ParseSyllabus validates data against the syllabus schema and decodes it.
func (p *Parser) ParseSyllabus(data []byte) (*edugen.Syllabus, error) {
	cleaned, err := p.validate(p.syllabus, data)
	if err != nil {
		return nil, err
	}
	var syllabus edugen.Syllabus
	if err := json.Unmarshal(cleaned, &syllabus); err != nil {
		return nil, edugen.Errorf(edugen.EINVALID, "failed to decode syllabus: %v", err)
	}
	return &syllabus, nil
}

// ParseNotes validates data against the notes schema and decodes it.
func (p *Parser) ParseNotes(data []byte) (*edugen.Notes, error) {
	cleaned, err := p.validate(p.notes, data)
	if err != nil {
		return nil, err
	}
	var notes edugen.Notes
	if err := json.Unmarshal(cleaned, &notes); err != nil {
		return nil, edugen.Errorf(edugen.EINVALID, "failed to decode notes: %v", err)
	}
	return &notes, nil
}

// validate strips markdown fences, checks the payload against the schema,
// and returns the cleaned JSON bytes.
func (p *Parser) validate(schema *jsonschema.Schema, data []byte) ([]byte, error) {
	cleaned := StripCodeFence(data)

	var v any
	if err := json.Unmarshal(cleaned, &v); err != nil {
		return nil, edugen.Errorf(edugen.EINVALID, "model output is not valid JSON: %v", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, edugen.Errorf(edugen.EINVALID, "model output failed schema validation: %v", err)
	}
	return cleaned, nil
}

// StripCodeFence removes a surrounding markdown code fence, which models
// emit even when asked for bare JSON.
func StripCodeFence(data []byte) []byte {
	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}
