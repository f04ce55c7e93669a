package services

import (
	"errors"

	"github.com/Ernan-ai/CaloCount/config"
	"github.com/Ernan-ai/CaloCount/models"

	"gorm.io/gorm"
)

// publicProfile is the subset of a user safe to show other users.
func publicProfile(u models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":              u.ID,
		"display_name":    u.DisplayName,
		"profile_picture": u.ProfilePicture,
	}
}

func ListUsers() ([]map[string]interface{}, error) {
	var users []models.User
	if err := config.DB.
		Where("disabled = ?", false).
		Order("display_name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(users))
	for _, u := range users {
		out = append(out, publicProfile(u))
	}
	return out, nil
}

func FollowUser(followerID, followeeID uint) error {
	if followerID == followeeID {
		return errors.New("cannot follow yourself")
	}
	if _, err := FindUserByID(followeeID); err != nil {
		return err
	}

	edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	return config.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		FirstOrCreate(&edge).Error
}

func UnfollowUser(followerID, followeeID uint) error {
	return config.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

func ListFollowers(userID uint) ([]map[string]interface{}, error) {
	return followEdgeProfiles("followee_id = ?", "follower_id", userID)
}

func ListFollowing(userID uint) ([]map[string]interface{}, error) {
	return followEdgeProfiles("follower_id = ?", "followee_id", userID)
}

func followEdgeProfiles(where, joinColumn string, userID uint) ([]map[string]interface{}, error) {
	var edges []models.Follow
	if err := config.DB.Where(where, userID).Find(&edges).Error; err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(edges))
	for _, e := range edges {
		other := e.FollowerID
		if joinColumn == "followee_id" {
			other = e.FolloweeID
		}

		var u models.User
		if err := config.DB.First(&u, "id = ?", other).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, publicProfile(u))
	}
	return out, nil
}
