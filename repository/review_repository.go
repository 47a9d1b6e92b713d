package repository

import (
	"github.com/google/uuid"

	"github.com/harutok/bookreview/database"
	"github.com/harutok/bookreview/models"
)

func CreateReview(review *models.Review) error {
	return database.DB.Create(review).Error
}

// FindReviewOwnedBy looks up a review scoped to its owner. A review belonging
// to someone else is indistinguishable from one that does not exist: both
// return gorm.ErrRecordNotFound. Handlers acting on behalf of a caller must
// go through this, never a bare lookup.
func FindReviewOwnedBy(id uint, userID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := database.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func UpdateReview(review *models.Review) error {
	return database.DB.Save(review).Error
}

func DeleteReview(review *models.Review) error {
	return database.DB.Delete(review).Error
}
