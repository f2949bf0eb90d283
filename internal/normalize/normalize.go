// Package normalize reshapes raw upstream team records for downstream use.
//
// Stages run in a fixed order because later ones depend on the key shapes
// produced by earlier ones: id stringification, camelCase conversion, field
// grouping, timestamp conversion, rating sentinel, key renaming.
package normalize

import "github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"

// Options selects the optional stages.
type Options struct {
	// CamelCase converts snake_case keys to camelCase.
	CamelCase bool
	// Pretty enables grouping, timestamp, rating and rename stages.
	Pretty bool
}

// Stage is a single in-place transform.
type Stage struct {
	Name  string
	Apply func(teams.Record)
}

// Pipeline applies the enabled stages in order.
type Pipeline struct {
	stages []Stage
}

// New builds the pipeline for opts.
func New(opts Options) *Pipeline {
	style := SnakeStyle
	stages := []Stage{{Name: "stringify_ids", Apply: StringifyIDs}}

	if opts.CamelCase {
		style = CamelStyle
		stages = append(stages, Stage{Name: "camel_case", Apply: CamelCaseKeys})
	}

	if opts.Pretty {
		stages = append(stages,
			Stage{Name: "group_fields", Apply: func(rec teams.Record) { GroupFields(rec, style.GroupPatterns) }},
			Stage{Name: "timestamps", Apply: func(rec teams.Record) { ConvertTimestamps(rec, style.Timestamps) }},
			Stage{Name: "rating", Apply: func(rec teams.Record) { NormalizeRating(rec, style.RatingField) }},
			Stage{Name: "rename", Apply: func(rec teams.Record) { RenameKeys(rec, style.Renames) }},
		)
	}

	return &Pipeline{stages: stages}
}

// Apply runs every stage on rec in place and returns it.
func (p *Pipeline) Apply(rec teams.Record) teams.Record {
	if p == nil || rec == nil {
		return rec
	}
	for _, s := range p.stages {
		s.Apply(rec)
	}
	return rec
}

// Stages returns the enabled stage names in execution order.
func (p *Pipeline) Stages() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name)
	}
	return names
}
