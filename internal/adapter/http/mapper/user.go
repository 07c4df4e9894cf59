package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToUserSummaries(summaries []domain.UserSummary) []dto.UserSummary {
	items := make([]dto.UserSummary, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, dto.UserSummary{
			ID:    summary.ID.Hex(),
			Name:  summary.Name,
			Email: summary.Email,
		})
	}
	return items
}

func ToPublicUser(user domain.User) dto.PublicUser {
	return dto.PublicUser{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
