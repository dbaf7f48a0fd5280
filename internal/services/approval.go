package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/logger"
	"gorm.io/gorm"
)

// ApprovalService drives the editor-change review workflow: owners list
// proposed changes and rule on them; approved content is written back to
// canonical storage by the content applier.
type ApprovalService struct {
	db       *gorm.DB
	applier  *ContentApplier
	activity *ActivityService
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{
		db:       db,
		applier:  NewContentApplier(db),
		activity: NewActivityService(db),
	}
}

// ChangeSummary is the normalized shape pending changes and workflow
// submissions are merged into for the unified history view.
type ChangeSummary struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"` // editor_change, workflow_submission
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Status          string    `json:"status"`
	Description     string    `json:"description"`
	Content         string    `json:"content"`
	ContentType     string    `json:"content_type,omitempty"`
	ChapterID       *uint     `json:"chapter_id,omitempty"`
	OriginalContent string    `json:"original_content,omitempty"`
	EditorNotes     string    `json:"editor_notes,omitempty"`
	AutoApplied     bool      `json:"auto_applied,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListChangesResult carries the merged summaries plus the raw pending
// change rows kept for backward compatibility with older callers.
type ListChangesResult struct {
	Items          []ChangeSummary        `json:"items"`
	PendingChanges []models.PendingChange `json:"pendingChanges"`
}

// ListChanges returns all changes for a project, newest first. The
// caller must be the project owner or an active collaborator.
func (s *ApprovalService) ListChanges(projectID, userID uint) (*ListChangesResult, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if project.OwnerID != userID && !IsActiveCollaborator(s.db, projectID, userID) {
		return nil, ErrAccessDenied
	}

	var changes []models.PendingChange
	if err := s.db.Where("project_id = ?", projectID).
		Preload("Editor").
		Find(&changes).Error; err != nil {
		return nil, err
	}

	var submissions []models.WorkflowSubmission
	if err := s.db.Where("project_id = ?", projectID).
		Preload("User").
		Find(&submissions).Error; err != nil {
		return nil, err
	}

	items := make([]ChangeSummary, 0, len(changes)+len(submissions))
	for _, c := range changes {
		items = append(items, summarizeChange(&c))
	}
	for _, sub := range submissions {
		items = append(items, summarizeSubmission(&sub))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return &ListChangesResult{
		Items:          items,
		PendingChanges: changes,
	}, nil
}

func summarizeChange(c *models.PendingChange) ChangeSummary {
	title := c.ContentTitle
	if title == "" {
		title = c.ContentType
	}
	author := ""
	if c.Editor != nil {
		author = c.Editor.Username
	}
	return ChangeSummary{
		ID:              c.ID,
		Type:            "editor_change",
		Title:           title,
		Author:          author,
		Status:          c.Status,
		Description:     c.ChangeDescription,
		Content:         c.ProposedContent,
		ContentType:     c.ContentType,
		ChapterID:       c.ChapterID,
		OriginalContent: c.OriginalContent,
		EditorNotes:     c.EditorNotes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func summarizeSubmission(sub *models.WorkflowSubmission) ChangeSummary {
	author := ""
	if sub.User != nil {
		author = sub.User.Username
	}
	return ChangeSummary{
		ID:          fmt.Sprintf("submission-%d", sub.ID),
		Type:        "workflow_submission",
		Title:       sub.Title,
		Author:      author,
		Status:      sub.Status,
		Description: sub.Description,
		Content:     sub.Content,
		AutoApplied: sub.AutoApplied,
		CreatedAt:   sub.CreatedAt,
		UpdatedAt:   sub.UpdatedAt,
	}
}

type DecisionRequest struct {
	PendingChangeID  string `json:"pendingChangeId"`
	Decision         string `json:"decision"` // approve, reject, request_revision
	FeedbackNotes    string `json:"feedbackNotes"`
	SuggestedChanges string `json:"suggestedChanges"`
}

type DecisionResult struct {
	DecisionID     string `json:"decisionId"`
	Decision       string `json:"decision"`
	Message        string `json:"message"`
	ChangesApplied bool   `json:"changesApplied"`
}

// decisionMetadata is the structured context captured on each decision row.
type decisionMetadata struct {
	DecidedAt    time.Time `json:"decided_at"`
	ProjectTitle string    `json:"project_title"`
}

// Decide records the owner's ruling on a pending change and, on approval,
// applies the proposed content. The sequence is deliberately not wrapped
// in a transaction: once the decision row is written the decision stands,
// and downstream failures (status update aside) degrade to
// ChangesApplied=false instead of failing the request.
func (s *ApprovalService) Decide(projectID, deciderID uint, req *DecisionRequest) (*DecisionResult, error) {
	if req.PendingChangeID == "" {
		return nil, ErrMissingChangeID
	}
	if !models.ValidDecision(req.Decision) {
		return nil, ErrInvalidDecision
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn().Uint("project_id", projectID).Uint("user_id", deciderID).
				Msg("decision on nonexistent project")
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	// Only the owner may decide. Kept distinct from not-found in logs but
	// not in the response, so project existence is not leaked.
	if project.OwnerID != deciderID {
		logger.Warn().Uint("project_id", projectID).Uint("user_id", deciderID).
			Msg("decision by non-owner denied")
		return nil, ErrAccessDenied
	}

	var change models.PendingChange
	if err := s.db.Where("id = ? AND project_id = ?", req.PendingChangeID, projectID).
		First(&change).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChangeNotFound
		}
		return nil, err
	}

	meta, _ := json.Marshal(decisionMetadata{
		DecidedAt:    time.Now(),
		ProjectTitle: project.Title,
	})

	// Step 1: the decision row. Failure here aborts the whole operation.
	decision := models.ApprovalDecision{
		PendingChangeID:  change.ID,
		OwnerID:          deciderID,
		Decision:         req.Decision,
		FeedbackNotes:    req.FeedbackNotes,
		SuggestedChanges: req.SuggestedChanges,
		DecisionMetadata: string(meta),
	}
	if err := s.db.Create(&decision).Error; err != nil {
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}

	// Step 2: status update. Failure leaves a decision row without a
	// matching status; surfaced as an error and logged for operators.
	newStatus := models.StatusForDecision(req.Decision)
	if err := s.db.Model(&change).Update("status", newStatus).Error; err != nil {
		logger.Error().Err(err).Str("decision_id", decision.ID).Str("change_id", change.ID).
			Msg("decision recorded but status update failed")
		return nil, fmt.Errorf("failed to update change status: %w", err)
	}

	// Step 3: content application, approval only. Failures are logged and
	// reported through ChangesApplied, never as a request error.
	changesApplied := false
	if req.Decision == models.DecisionApprove {
		applied, err := s.applier.Apply(&change, &project, decision.ID)
		if err != nil {
			logger.Error().Err(err).Str("change_id", change.ID).
				Str("content_type", change.ContentType).
				Msg("approved content could not be applied")
		}
		changesApplied = applied
	}

	// Step 4: best-effort audit entry.
	s.activity.Record(projectID, deciderID,
		"editor_change_"+newStatus,
		decisionDescription(&change, req.Decision))

	// Best-effort editor notification via the task queue.
	if q := GetTaskQueue(); q != nil {
		task := &NotificationTask{
			UserID:    change.EditorID,
			Type:      "decision",
			Title:     fmt.Sprintf("Your change to %q was %s", project.Title, newStatus),
			Message:   notificationMessage(&change, req.Decision, req.FeedbackNotes),
			ProjectID: projectID,
		}
		if err := q.Enqueue(task); err != nil {
			logger.Warn().Err(err).Uint("editor_id", change.EditorID).
				Msg("failed to enqueue decision notification")
		}
	}

	return &DecisionResult{
		DecisionID:     decision.ID,
		Decision:       req.Decision,
		Message:        decisionMessage(req.Decision, changesApplied),
		ChangesApplied: changesApplied,
	}, nil
}

func decisionDescription(c *models.PendingChange, decision string) string {
	target := c.ContentTitle
	if target == "" {
		target = c.ContentType
	}
	switch decision {
	case models.DecisionApprove:
		return fmt.Sprintf("Approved editor change to %q", target)
	case models.DecisionReject:
		return fmt.Sprintf("Rejected editor change to %q", target)
	default:
		return fmt.Sprintf("Requested revision of editor change to %q", target)
	}
}

func decisionMessage(decision string, applied bool) string {
	switch decision {
	case models.DecisionApprove:
		if applied {
			return "Changes approved and applied"
		}
		return "Changes approved; content could not be applied"
	case models.DecisionReject:
		return "Changes rejected"
	default:
		return "Revision requested"
	}
}

func notificationMessage(c *models.PendingChange, decision, feedback string) string {
	msg := decisionDescription(c, decision)
	if feedback != "" {
		msg += ": " + feedback
	}
	return msg
}
