package services

import (
	"fmt"
	"strings"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/logger"
	"gorm.io/gorm"
)

// ContentApplier writes approved proposed content into canonical storage:
// the project content blob, a specific chapter, or the project synopsis.
type ContentApplier struct {
	db *gorm.DB
}

func NewContentApplier(db *gorm.DB) *ContentApplier {
	return &ContentApplier{db: db}
}

// Apply dispatches on the change's content type. It returns whether the
// canonical content was actually mutated. Unrecognized content types are
// logged and skipped without error.
func (a *ContentApplier) Apply(change *models.PendingChange, project *models.Project, decisionID string) (bool, error) {
	var (
		applied bool
		err     error
	)

	switch change.ContentType {
	case models.ContentTypeProjectContent:
		applied, err = a.applyProjectContent(change, project)
	case models.ContentTypeChapter:
		applied, err = a.applyChapter(change)
	case models.ContentTypeOutline:
		applied, err = a.applyOutline(change, project)
	default:
		logger.Warn().Str("change_id", change.ID).Str("content_type", change.ContentType).
			Msg("unsupported content type, change not applied")
		return false, nil
	}

	if err != nil || !applied {
		return applied, err
	}

	// Secondary tracking record for the merged history view.
	submission := models.WorkflowSubmission{
		ProjectID:      change.ProjectID,
		UserID:         change.EditorID,
		SubmissionType: submissionType(change.ContentType),
		Title:          change.ContentTitle,
		Description:    change.ChangeDescription,
		Content:        change.ProposedContent,
		Status:         "applied",
		AutoApplied:    true,
		DecisionID:     &decisionID,
	}
	if subErr := a.db.Create(&submission).Error; subErr != nil {
		return applied, fmt.Errorf("content applied but submission record failed: %w", subErr)
	}

	return applied, nil
}

func (a *ContentApplier) applyProjectContent(change *models.PendingChange, project *models.Project) (bool, error) {
	var content models.ProjectContent
	err := a.db.Where("project_id = ?", change.ProjectID).First(&content).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"content": change.ProposedContent,
			"version": content.Version + 1,
		}
		if err := a.db.Model(&content).Updates(updates).Error; err != nil {
			return false, err
		}
	case err == gorm.ErrRecordNotFound:
		content = models.ProjectContent{
			ProjectID: change.ProjectID,
			Filename:  contentFilename(project.Title),
			AssetType: "content",
			Content:   change.ProposedContent,
			Version:   1,
		}
		if err := a.db.Create(&content).Error; err != nil {
			return false, err
		}
	default:
		return false, err
	}
	return true, nil
}

func (a *ContentApplier) applyChapter(change *models.PendingChange) (bool, error) {
	if change.ChapterID == nil {
		return false, fmt.Errorf("chapter change %s has no chapter id", change.ID)
	}

	var chapter models.ProjectChapter
	if err := a.db.Where("id = ? AND project_id = ?", *change.ChapterID, change.ProjectID).
		First(&chapter).Error; err != nil {
		return false, err
	}

	updates := map[string]interface{}{
		"content":    change.ProposedContent,
		"word_count": CountWords(change.ProposedContent),
	}
	if err := a.db.Model(&chapter).Updates(updates).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (a *ContentApplier) applyOutline(change *models.PendingChange, project *models.Project) (bool, error) {
	if err := a.db.Model(project).Update("synopsis", change.ProposedContent).Error; err != nil {
		return false, err
	}
	return true, nil
}

func submissionType(contentType string) string {
	switch contentType {
	case models.ContentTypeChapter:
		return "chapter_update"
	case models.ContentTypeOutline:
		return "outline_update"
	default:
		return "content_update"
	}
}

// contentFilename derives a storage filename from the project title.
func contentFilename(title string) string {
	name := strings.TrimSpace(strings.ToLower(title))
	name = strings.Join(strings.Fields(name), "-")
	if name == "" {
		name = "project"
	}
	return name + ".md"
}

// CountWords counts whitespace-delimited tokens in the trimmed text.
// An empty or all-whitespace string counts as zero words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
