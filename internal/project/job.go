package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/piwi3910/CabFace/internal/model"
)

// JobVersion is written into every job file.
const JobVersion = "1.0.0"

// Job is the saved state of an estimating job: its cabinets and the
// sections they are grouped into.
type Job struct {
	Version   string             `json:"version"`
	Name      string             `json:"name"`
	CreatedAt string             `json:"created_at"`
	Cabinets  []model.Cabinet    `json:"cabinets"`
	Sections  model.SectionStore `json:"sections"`
}

// NewJob creates an empty job.
func NewJob(name string) Job {
	return Job{
		Version:   JobVersion,
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Cabinets:  []model.Cabinet{},
		Sections:  model.NewSectionStore(),
	}
}

// Cabinet returns a pointer to the cabinet with the given id, or nil.
func (j *Job) Cabinet(id string) *model.Cabinet {
	for i := range j.Cabinets {
		if j.Cabinets[i].ID == id {
			return &j.Cabinets[i]
		}
	}
	return nil
}

// SaveJob writes a job to a JSON file, creating parent directories.
func SaveJob(path string, job Job) error {
	if job.Version == "" {
		job.Version = JobVersion
	}
	return writeJSON(path, job)
}

// LoadJob reads a job file. Nil slices are normalized to empty ones.
func LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("failed to read job file: %w", err)
	}
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}
	if job.Version == "" {
		return Job{}, fmt.Errorf("invalid job file: missing version field")
	}
	if job.Cabinets == nil {
		job.Cabinets = []model.Cabinet{}
	}
	if job.Sections.Sections == nil {
		job.Sections.Sections = []model.Section{}
	}
	return job, nil
}

// SaveCabinet writes a single cabinet with its face config as JSON.
func SaveCabinet(path string, cab model.Cabinet) error {
	return writeJSON(path, cab)
}

// LoadCabinet reads a single cabinet file. The face config is returned as
// stored; the engine normalizes it when an editor loads the cabinet.
func LoadCabinet(path string) (model.Cabinet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Cabinet{}, fmt.Errorf("failed to read cabinet file: %w", err)
	}
	return DecodeCabinet(data)
}

// DecodeCabinet parses cabinet JSON.
func DecodeCabinet(data []byte) (model.Cabinet, error) {
	var cab model.Cabinet
	if err := json.Unmarshal(data, &cab); err != nil {
		return model.Cabinet{}, fmt.Errorf("failed to parse cabinet: %w", err)
	}
	if cab.Width <= 0 || cab.Height <= 0 || cab.Depth <= 0 {
		return model.Cabinet{}, fmt.Errorf("invalid cabinet: size %vx%vx%v", cab.Width, cab.Height, cab.Depth)
	}
	return cab, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
