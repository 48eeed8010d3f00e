package save

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/osiris/internal/player"
	"github.com/samdwyer/osiris/internal/telemetry"
)

// DefaultPath is the record location when none is configured.
const DefaultPath = "savegame.txt"

// Store keeps the single active record in a local file.
type Store struct {
	path string
}

// NewStore creates a store for the record at path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the record location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the record. A missing or unreadable record yields
// player.Default() and a non-nil error describing why; the state is usable
// either way.
func (s *Store) Load(ctx context.Context) (*player.State, error) {
	_, span := telemetry.Tracer("save").Start(ctx, "save.load")
	defer span.End()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			span.SetAttributes(attribute.Bool("record.exists", false))
			return player.Default(), ErrNoRecord
		}
		span.RecordError(err)
		return player.Default(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	phase, p, err := Decode(bytes.NewReader(data))
	span.SetAttributes(
		attribute.Bool("record.exists", true),
		attribute.String("record.phase", phase.String()),
		attribute.Int("record.bytes", len(data)),
	)
	if err != nil {
		span.RecordError(err)
	}
	return p, err
}

// Save writes p as the active record, replacing the previous one atomically.
func (s *Store) Save(ctx context.Context, p *player.State) error {
	_, span := telemetry.Tracer("save").Start(ctx, "save.write")
	defer span.End()
	span.SetAttributes(attribute.String("record.phase", p.Phase.String()))

	var buf bytes.Buffer
	if err := Encode(&buf, p.Phase, p); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := writeFileAtomic(s.path, buf.Bytes()); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	span.SetAttributes(attribute.Int("record.bytes", buf.Len()))
	return nil
}

// Reset removes the active record. A missing record is not an error.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
