package localefile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"localenorm/internal/domain"
	"localenorm/internal/ports/output"
)

// FileNamePattern donne le nom du fichier d'une langue à partir de son tag.
const FileNamePattern = "active.%s.toml"

var _ output.LocaleStore = (*Store)(nil)

// Store lit et écrit les fichiers `active.<tag>.toml` d'un répertoire.
type Store struct {
	dir    string
	atomic bool
}

// NewStore crée un Store sur dir. Avec atomic, l'écriture passe par un
// fichier temporaire renommé sur la cible (les droits sont conservés, pas le
// propriétaire).
func NewStore(dir string, atomic bool) *Store {
	return &Store{dir: dir, atomic: atomic}
}

func (s *Store) Path(tag string) string {
	return filepath.Join(s.dir, fmt.Sprintf(FileNamePattern, tag))
}

func (s *Store) Read(_ context.Context, tag string) ([]byte, error) {
	path := s.Path(tag)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLocaleFileAccess, err)
	}
	return data, nil
}

// Write remplace tout le contenu du fichier de langue, qui doit déjà exister.
// Un lien symbolique est toujours réécrit sur place : un renommage le
// remplacerait par un fichier ordinaire.
func (s *Store) Write(_ context.Context, tag string, data []byte) error {
	path := s.Path(tag)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLocaleFileAccess, err)
	}
	link, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLocaleFileAccess, err)
	}

	if !s.atomic || link.Mode()&os.ModeSymlink != 0 {
		if err := writeInPlace(path, data); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrLocaleFileAccess, err)
		}
		return nil
	}

	if err := writeAtomic(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLocaleFileAccess, err)
	}
	return nil
}

func writeInPlace(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		_ = tmp.Close()
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Warnf("impossible de supprimer le fichier temporaire %s: %v", tmp.Name(), rmErr)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
