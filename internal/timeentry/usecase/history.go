package usecase

import (
	"context"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/timeentry"
	repo "task-time-tracker/internal/timeentry/repository"
)

// History returns a page of the caller's entries, newest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input timeentry.ListHistoryInput) (timeentry.ListHistoryOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	items, total, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		UserID: sc.UserID,
		Start:  input.Start,
		End:    input.End,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListEntries: %v", err)
		return timeentry.ListHistoryOutput{}, err
	}

	totalPages := (total + limit - 1) / limit

	return timeentry.ListHistoryOutput{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}
