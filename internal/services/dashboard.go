package services

import (
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	OwnedProjects      int64                    `json:"owned_projects"`
	Collaborations     int64                    `json:"collaborations"`
	PendingReviews     int64                    `json:"pending_reviews"`
	SubmittedChanges   int64                    `json:"submitted_changes"`
	ChangesByStatus    map[string]int64         `json:"changes_by_status"`
	TotalWordCount     int64                    `json:"total_word_count"`
	UnreadNotification int64                    `json:"unread_notifications"`
	RecentActivity     []models.ProjectActivity `json:"recent_activity"`
}

// GetStats aggregates per-user dashboard numbers: owned projects,
// collaborations, review workload and recent activity across the
// user's projects.
func (s *DashboardService) GetStats(userID uint) (*DashboardStats, error) {
	stats := &DashboardStats{ChangesByStatus: map[string]int64{}}

	if err := s.db.Model(&models.Project{}).
		Where("owner_id = ?", userID).
		Count(&stats.OwnedProjects).Error; err != nil {
		return nil, err
	}

	s.db.Model(&models.ProjectCollaborator{}).
		Where("user_id = ? AND status = ?", userID, models.CollabStatusActive).
		Count(&stats.Collaborations)

	ownedIDs := s.db.Model(&models.Project{}).
		Select("id").Where("owner_id = ?", userID)

	// Changes waiting on this user as the project owner
	s.db.Model(&models.PendingChange{}).
		Where("project_id IN (?) AND status = ?", ownedIDs, models.ChangeStatusPending).
		Count(&stats.PendingReviews)

	// Changes this user submitted as an editor
	s.db.Model(&models.PendingChange{}).
		Where("editor_id = ?", userID).
		Count(&stats.SubmittedChanges)

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	s.db.Model(&models.PendingChange{}).
		Select("status, COUNT(*) as count").
		Where("editor_id = ?", userID).
		Group("status").
		Scan(&rows)
	for _, r := range rows {
		stats.ChangesByStatus[r.Status] = r.Count
	}

	s.db.Model(&models.Project{}).
		Where("owner_id = ?", userID).
		Select("COALESCE(SUM(word_count), 0)").
		Scan(&stats.TotalWordCount)

	s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&stats.UnreadNotification)

	memberIDs := s.db.Model(&models.ProjectCollaborator{}).
		Select("project_id").
		Where("user_id = ? AND status = ?", userID, models.CollabStatusActive)

	if err := s.db.Preload("User").
		Where("project_id IN (?) OR project_id IN (?)", ownedIDs, memberIDs).
		Order("created_at DESC").
		Limit(10).
		Find(&stats.RecentActivity).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
