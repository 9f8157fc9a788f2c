// Package dataset implements the repository over a static JSON snapshot
// loaded once at startup and held read-only in memory.
package dataset

import (
	"context"
	"os"

	"github.com/deepakbhimavarapu/SkillSol/config"
	"github.com/deepakbhimavarapu/SkillSol/internal/entities"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// document mirrors the six top-level fields of the snapshot file.
// Absent fields decode to nil and default independently.
type document struct {
	Organizations []entities.Organization `json:"organizations"`
	Teams         []entities.Team         `json:"teams"`
	Roles         []entities.Role         `json:"roles"`
	Individuals   []entities.Individual   `json:"individuals"`
	Skills        []entities.Skill        `json:"skills"`
	Benchmarks    entities.BenchmarkSet   `json:"benchmarks"`
}

// Store holds the loaded collections. Never mutated after OnStart, so
// concurrent readers need no locking.
type Store struct {
	log  *zap.SugaredLogger
	path string

	organizations []entities.Organization
	teams         []entities.Team
	roles         []entities.Role
	individuals   []entities.Individual
	skills        []entities.Skill
	benchmarks    entities.BenchmarkSet
}

// New creates a dataset repository instance.
func New(_ context.Context, log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		log:  log.Named("repo.dataset"),
		path: cfg.Dataset.Path,
	}
}

// OnStart reads and decodes the snapshot. A read or parse failure is
// logged and replaced by all-empty collections; the service still starts.
func (s *Store) OnStart(_ context.Context) error {
	var doc document

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Errorw("failed to read dataset, serving empty collections", "path", s.path, "error", err)
	} else if err := sonic.Unmarshal(raw, &doc); err != nil {
		s.log.Errorw("failed to parse dataset, serving empty collections", "path", s.path, "error", err)
		doc = document{}
	}

	s.install(doc)
	s.log.Infow("dataset ready",
		"path", s.path,
		"organizations", len(s.organizations),
		"teams", len(s.teams),
		"roles", len(s.roles),
		"individuals", len(s.individuals),
		"skills", len(s.skills),
		"industries", len(s.benchmarks),
	)
	return nil
}

// OnStop is a no-op; the store owns no external resources.
func (s *Store) OnStop(_ context.Context) error { return nil }

func (s *Store) install(doc document) {
	s.organizations = doc.Organizations
	s.teams = doc.Teams
	s.roles = doc.Roles
	s.individuals = doc.Individuals
	s.skills = doc.Skills
	s.benchmarks = doc.Benchmarks

	if s.organizations == nil {
		s.organizations = []entities.Organization{}
	}
	if s.teams == nil {
		s.teams = []entities.Team{}
	}
	if s.roles == nil {
		s.roles = []entities.Role{}
	}
	if s.individuals == nil {
		s.individuals = []entities.Individual{}
	}
	if s.skills == nil {
		s.skills = []entities.Skill{}
	}
	if s.benchmarks == nil {
		s.benchmarks = entities.BenchmarkSet{}
	}
}
