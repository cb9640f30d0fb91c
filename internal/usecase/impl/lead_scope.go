package impl

import (
	"context"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// visibleStaff returns nil when the caller may see every staff member's records,
// or the IDs of the staff in a lead's departments. Other roles are forbidden.
// A lead without departments sees no one.
func visibleStaff(ctx context.Context, profileRepo repository.ProfileRepository, caller entity.Identity) ([]uuid.UUID, error) {
	if caller.Roles.IsAdmin() {
		return nil, nil
	}
	if !caller.Roles.Contains(entity.RoleLead) {
		return nil, domainerrors.ErrForbidden
	}

	profile, err := profileRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrForbidden
		}

		return nil, errors.Wrap(err, "failed to find caller profile")
	}

	ids := []uuid.UUID{}
	if len(profile.LeadDepartments) == 0 {
		return ids, nil
	}

	staff, err := profileRepo.ListByDepartments(ctx, profile.LeadDepartments)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list department staff")
	}
	for _, p := range staff {
		ids = append(ids, p.ID)
	}

	return ids, nil
}

// profilesFor loads the profiles of the given user IDs once each.
func profilesFor(ctx context.Context, profileRepo repository.ProfileRepository, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	seen := make(map[uuid.UUID]struct{}, len(userIDs))
	ids := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return map[uuid.UUID]*entity.Profile{}, nil
	}

	profiles, err := profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	return profiles, nil
}
