// Package storage persists finished runs under a data directory, one
// subdirectory per run: metadata.json with the run summary and
// steps.csv with the full step trace. Playback itself never touches
// storage; only the CLI saves and loads runs.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avolodin/sortlab/internal/step"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Algorithm     string    `json:"algorithm"`
	Timestamp     time.Time `json:"timestamp"`
	Seed          int64     `json:"seed"`
	Pattern       string    `json:"pattern"`
	Size          int       `json:"size"`
	Comparisons   int       `json:"comparisons"`
	Swaps         int       `json:"swaps"`
	ArrayAccesses int       `json:"arrayAccesses"`
	Steps         int       `json:"steps"`
}

// Save writes one run and returns its id.
func (s *Store) Save(algorithm, pattern string, seed int64, input []int, res *step.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", algorithm, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Algorithm:     algorithm,
		Timestamp:     time.Now(),
		Seed:          seed,
		Pattern:       pattern,
		Size:          len(input),
		Comparisons:   res.Comparisons,
		Swaps:         res.Swaps,
		ArrayAccesses: res.ArrayAccesses,
		Steps:         len(res.Steps),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeSteps(filepath.Join(runDir, "steps.csv"), res); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) writeSteps(path string, res *step.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"index", "action", "detail", "description", "array"}); err != nil {
		return err
	}
	for i, st := range res.Steps {
		rec := []string{
			strconv.Itoa(i),
			string(st.Action),
			stepDetail(st),
			st.Description,
			joinInts(st.Data.Array),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func stepDetail(st step.Step) string {
	d := st.Data
	switch st.Action {
	case step.Compare:
		return joinInts(d.Comparing)
	case step.Swap:
		return joinInts(d.Swapping)
	case step.Set:
		if d.Setting != nil {
			return fmt.Sprintf("%d=%d", d.Setting.Index, d.Setting.Value)
		}
	case step.MarkSorted, step.Complete:
		return joinInts(d.Sorted)
	case step.MarkPivot:
		return strconv.Itoa(d.Pivot)
	case step.MarkRange:
		return joinInts(d.Range)
	}
	return ""
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// StepsCSVPath returns the path of a run's step trace.
func (s *Store) StepsCSVPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "steps.csv")
}
