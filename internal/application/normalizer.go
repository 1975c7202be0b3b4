package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ubuntu/decorate"

	"localenorm/internal/domain"
	"localenorm/internal/domain/entities"
	"localenorm/internal/ports/input"
	"localenorm/internal/ports/output"
	"localenorm/pkg/localefmt"
)

var _ input.NormalizerUseCase = (*NormalizerService)(nil)

type NormalizerService struct {
	store         output.LocaleStore
	verifier      output.MessageVerifier
	transactional bool
}

type Option func(*NormalizerService)

// WithVerifier fait vérifier chaque fichier normalisé par v. Les échecs sont
// journalisés par NormalizeAll et renvoyés par CheckAll.
func WithVerifier(v output.MessageVerifier) Option {
	return func(s *NormalizerService) {
		s.verifier = v
	}
}

// WithTransactional fait lire et normaliser toutes les langues par
// NormalizeAll avant d'en écrire une seule.
func WithTransactional(enabled bool) Option {
	return func(s *NormalizerService) {
		s.transactional = enabled
	}
}

func NewNormalizerService(store output.LocaleStore, opts ...Option) *NormalizerService {
	s := &NormalizerService{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type pending struct {
	result entities.LocaleResult
	data   []byte
}

// NormalizeAll réécrit le fichier de chaque langue, dans l'ordre. Elle s'arrête
// à la première erreur ; les fichiers déjà réécrits gardent leur nouveau contenu.
func (s *NormalizerService) NormalizeAll(ctx context.Context, tags []string) (results []entities.LocaleResult, err error) {
	defer decorate.OnError(&err, "normalisation des langues")

	if !s.transactional {
		for _, tag := range tags {
			p, err := s.prepare(ctx, tag)
			if err != nil {
				return results, err
			}
			if err := s.commit(ctx, p); err != nil {
				return results, err
			}
			results = append(results, p.result)
		}
		return results, nil
	}

	staged := make([]pending, 0, len(tags))
	for _, tag := range tags {
		p, err := s.prepare(ctx, tag)
		if err != nil {
			return nil, err
		}
		staged = append(staged, p)
	}
	for _, p := range staged {
		if err := s.commit(ctx, p); err != nil {
			return results, err
		}
		results = append(results, p.result)
	}
	return results, nil
}

// CheckAll signale les langues dont le fichier diffère de sa forme normalisée.
// Rien n'est écrit.
func (s *NormalizerService) CheckAll(ctx context.Context, tags []string) (results []entities.LocaleResult, err error) {
	defer decorate.OnError(&err, "vérification des langues")

	var stale []string
	var invalid []error
	for _, tag := range tags {
		p, err := s.prepare(ctx, tag)
		if err != nil {
			return results, err
		}
		results = append(results, p.result)

		if p.result.Changed {
			log.Infof("%s n'est pas normalisé", p.result.Path)
			stale = append(stale, tag)
		}
		if s.verifier != nil {
			if err := s.verifier.Verify(p.result.Path, p.data); err != nil {
				invalid = append(invalid, err)
			}
		}
	}

	if len(stale) > 0 {
		invalid = append(invalid, fmt.Errorf("%w: %s", domain.ErrNotNormalized, strings.Join(stale, ", ")))
	}
	return results, errors.Join(invalid...)
}

func (s *NormalizerService) prepare(ctx context.Context, tag string) (pending, error) {
	if err := ctx.Err(); err != nil {
		return pending{}, err
	}

	path := s.store.Path(tag)
	content, err := s.store.Read(ctx, tag)
	if err != nil {
		return pending{}, err
	}

	data, n := localefmt.Normalize(content)
	log.Debugf("%s : %d entrées", path, n)

	return pending{
		result: entities.LocaleResult{
			Tag:     tag,
			Path:    path,
			Entries: n,
			Changed: !bytes.Equal(content, data),
		},
		data: data,
	}, nil
}

func (s *NormalizerService) commit(ctx context.Context, p pending) error {
	if s.verifier != nil {
		if err := s.verifier.Verify(p.result.Path, p.data); err != nil {
			log.Warnf("%s: %v", p.result.Path, err)
		}
	}
	if err := s.store.Write(ctx, p.result.Tag, p.data); err != nil {
		return err
	}
	log.Infof("%s normalisé (%d entrées, modifié : %t)", p.result.Path, p.result.Entries, p.result.Changed)
	return nil
}
