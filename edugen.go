// Package edugen generates teaching artifacts from source material. It
// loads documents, indexes them in an ephemeral vector index, retrieves
// relevant context, prompts a generative model for a structured rubric,
// syllabus, or set of notes, validates the model's output, and renders
// the result into a distributable PDF.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., gemini/,
// latex/, memindex/).
package edugen
