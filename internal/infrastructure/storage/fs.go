// Package storage persists puzzle records as JSON files, one file per
// record, bucketed by difficulty grade.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudoku-engine/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var grades = []domain.Difficulty{
	domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Extreme,
}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.PuzzleRecord) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle record: missing ID")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.PuzzleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, grade, ok := s.find(id)
	if !ok {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out domain.PuzzleRecord
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	// Old records may predate the difficulty field; the folder knows.
	if out.Difficulty == 0 {
		out.Difficulty = grade
	}
	return &out, nil
}

func (s *FS) find(id string) (string, domain.Difficulty, bool) {
	for _, d := range grades {
		p := s.pathFor(id, d)
		if _, err := os.Stat(p); err == nil {
			return p, d, true
		}
	}
	return "", 0, false
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range grades {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ents, err := os.ReadDir(filepath.Join(s.dir, d.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d.String(), e.Name()))
			if err != nil {
				continue
			}
			var rec domain.PuzzleRecord
			if err := json.Unmarshal(data, &rec); err != nil || rec.ID == "" {
				continue
			}
			if rec.Difficulty == 0 {
				rec.Difficulty = d
			}
			out = append(out, domain.PuzzleMeta{
				ID:         rec.ID,
				Name:       rec.Name,
				Difficulty: rec.Difficulty,
				CreatedAt:  rec.CreatedAt,
			})
		}
	}
	return out, nil
}

func (s *FS) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, _, ok := s.find(id)
	if !ok {
		return os.ErrNotExist
	}
	return os.Remove(path)
}
