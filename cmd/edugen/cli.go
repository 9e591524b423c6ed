package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/config"
	"github.com/fwojciec/edugen/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *config.Config
	Logger     *slog.Logger
	Rubrics    *pipeline.Rubric
	Syllabi    *pipeline.Syllabus
	Notes      *pipeline.Notes
	Classifier edugen.Classifier
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Config file path" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Rubric   RubricCmd   `cmd:"" help:"Generate a grading rubric from source material"`
	Syllabus SyllabusCmd `cmd:"" help:"Generate a course syllabus from an uploaded artifact"`
	Notes    NotesCmd    `cmd:"" help:"Generate study notes from source material"`
	Classify ClassifyCmd `cmd:"" help:"Classify a topic into a course subject group"`
}

// RubricCmd is the "rubric" subcommand.
type RubricCmd struct {
	Standard   string `arg:"" help:"Learning standard the rubric grades against"`
	GradeLevel string `short:"g" required:"" help:"Target grade level (e.g. '9th grade', 'university')"`
	PointScale int    `short:"p" help:"Number of point levels per criterion (2-8; config default when omitted)"`
	Source     string `short:"s" help:"Source material: file path, URL, or YouTube URL (defaults to the standard text)"`
	SourceType string `short:"t" enum:"text,file,url,youtube_url," default:"" help:"Source type (inferred when omitted)"`
	Lang       string `short:"l" default:"en" help:"Output language"`
}

// SyllabusCmd is the "syllabus" subcommand.
type SyllabusCmd struct {
	Course            string `arg:"" help:"Course name"`
	GradeLevel        string `short:"g" required:"" help:"Target grade level"`
	InstructorName    string `required:"" help:"Instructor name"`
	InstructorTitle   string `default:"" help:"Instructor title (e.g. 'Dr.')"`
	UnitTime          string `default:"week" help:"Schedule unit (week, month)"`
	UnitTimeValue     int    `default:"12" help:"Number of schedule units"`
	StartDate         string `help:"Course start date (YYYY-MM-DD)"`
	AssessmentMethods string `help:"How students are assessed"`
	GradingScale      string `help:"Grading scale description"`
	Source            string `short:"s" help:"Course artifact: file path, image, URL, or YouTube URL"`
	SourceType        string `short:"t" enum:"text,file,url,img,youtube_url," default:"" help:"Source type (inferred when omitted)"`
	Lang              string `short:"l" default:"en" help:"Output language"`
}

// NotesCmd is the "notes" subcommand.
type NotesCmd struct {
	Source     string `arg:"" help:"Source material: file path, URL, or YouTube URL"`
	FocusTopic string `short:"f" help:"Topic to focus the notes on"`
	Structure  string `enum:"bullet,paragraph,table" default:"bullet" help:"Notes structure"`
	Format     string `enum:"txt,md,pdf" default:"pdf" help:"Export format"`
	SourceType string `short:"t" enum:"text,file,url,youtube_url," default:"" help:"Source type (inferred when omitted)"`
	Lang       string `short:"l" default:"en" help:"Output language"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	Topic string `arg:"" help:"Topic to classify"`
}
