package impl

import (
	"context"
	"slices"
	"time"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type documentationService struct {
	docRepo     repository.DocumentationRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// DocumentationServiceParams holds dependencies for DocumentationService, injected by Fx.
type DocumentationServiceParams struct {
	fx.In

	DocRepo     repository.DocumentationRepository
	ProfileRepo repository.ProfileRepository
}

// NewDocumentationService creates a new documentation service instance
func NewDocumentationService(params DocumentationServiceParams) usecase.DocumentationUsecase {
	return &documentationService{
		docRepo:     params.DocRepo,
		profileRepo: params.ProfileRepo,
		now:         time.Now,
	}
}

// List returns the documentation visible to the caller, filtered, with stats over the visible set
func (s *documentationService) List(ctx context.Context, caller entity.Identity, filter entity.DocumentationFilter) (*usecase.DocumentationList, error) {
	if !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidDocumentationFilter
	}

	authors, err := visibleStaff(ctx, s.profileRepo, caller)
	if err != nil {
		return nil, err
	}

	docs := []*entity.Documentation{}
	if authors == nil || len(authors) > 0 {
		docs, err = s.docRepo.List(ctx, authors)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list documentation")
		}
	}

	if err := s.attachAuthors(ctx, docs); err != nil {
		return nil, err
	}

	items := make([]*entity.Documentation, 0, len(docs))
	for _, d := range docs {
		if filter.Match(d) {
			items = append(items, d)
		}
	}

	return &usecase.DocumentationList{
		Items:       items,
		Stats:       entity.TallyDocumentation(docs, s.now()),
		Categories:  distinct(docs, func(d *entity.Documentation) string { return d.Category }),
		Departments: distinct(docs, authorDepartment),
	}, nil
}

// Get returns one document if the caller may see its author
func (s *documentationService) Get(ctx context.Context, caller entity.Identity, docID uuid.UUID) (*entity.Documentation, error) {
	authors, err := visibleStaff(ctx, s.profileRepo, caller)
	if err != nil {
		return nil, err
	}

	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentationNotFound) {
			return nil, domainerrors.ErrDocumentationNotFound
		}

		return nil, errors.Wrap(err, "failed to find documentation")
	}
	if authors != nil && !slices.Contains(authors, doc.UserID) {
		return nil, domainerrors.ErrDocumentationNotFound
	}

	if err := s.attachAuthors(ctx, []*entity.Documentation{doc}); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *documentationService) attachAuthors(ctx context.Context, docs []*entity.Documentation) error {
	if len(docs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.UserID)
	}

	profiles, err := profilesFor(ctx, s.profileRepo, ids)
	if err != nil {
		return errors.Wrap(err, "failed to find documentation authors")
	}
	for _, d := range docs {
		d.Author = profiles[d.UserID]
	}

	return nil
}

func authorDepartment(d *entity.Documentation) string {
	if d.Author == nil {
		return ""
	}

	return d.Author.Department
}

// distinct collects the non-empty values of key in first-seen order.
func distinct(docs []*entity.Documentation, key func(*entity.Documentation) string) []string {
	values := []string{}
	for _, d := range docs {
		if v := key(d); v != "" && !slices.Contains(values, v) {
			values = append(values, v)
		}
	}

	return values
}
