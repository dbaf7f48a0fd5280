package services

import (
	"testing"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
)

func TestSubmit_OutlineSnapshotsSynopsis(t *testing.T) {
	db := newTestDB(t)
	_, editor, project := seedProject(t, db)

	svc := NewPendingChangeService(db)
	change, err := svc.Submit(project.ID, editor.ID, &SubmitChangeRequest{
		ContentType:     models.ContentTypeOutline,
		ProposedContent: "New synopsis",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if change.ID == "" {
		t.Error("change should get a generated id")
	}
	if change.Status != models.ChangeStatusPending {
		t.Errorf("Status = %q, expected pending", change.Status)
	}
	if change.OriginalContent != "Original synopsis" {
		t.Errorf("OriginalContent = %q, expected the current synopsis", change.OriginalContent)
	}
	if change.ContentTitle != "The Long Winter (outline)" {
		t.Errorf("ContentTitle = %q, unexpected snapshot title", change.ContentTitle)
	}
}

func TestSubmit_ChapterSnapshotsChapter(t *testing.T) {
	db := newTestDB(t)
	_, editor, project := seedProject(t, db)

	chapter := models.ProjectChapter{
		ProjectID:     project.ID,
		ChapterNumber: 1,
		Title:         "Chapter One",
		Content:       "old content",
	}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatalf("failed to create chapter: %v", err)
	}

	svc := NewPendingChangeService(db)
	change, err := svc.Submit(project.ID, editor.ID, &SubmitChangeRequest{
		ContentType:     models.ContentTypeChapter,
		ChapterID:       &chapter.ID,
		ProposedContent: "new content",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if change.OriginalContent != "old content" {
		t.Errorf("OriginalContent = %q, expected the chapter content", change.OriginalContent)
	}
	if change.ContentTitle != "Chapter One" {
		t.Errorf("ContentTitle = %q, expected the chapter title", change.ContentTitle)
	}
}

func TestSubmit_Validation(t *testing.T) {
	db := newTestDB(t)
	_, editor, project := seedProject(t, db)
	svc := NewPendingChangeService(db)

	// Unknown content type.
	if _, err := svc.Submit(project.ID, editor.ID, &SubmitChangeRequest{
		ContentType:     "poster",
		ProposedContent: "x",
	}); err != ErrInvalidChangeReq {
		t.Errorf("err = %v, expected ErrInvalidChangeReq for unknown type", err)
	}

	// Chapter type requires a chapter id.
	if _, err := svc.Submit(project.ID, editor.ID, &SubmitChangeRequest{
		ContentType:     models.ContentTypeChapter,
		ProposedContent: "x",
	}); err != ErrInvalidChangeReq {
		t.Errorf("err = %v, expected ErrInvalidChangeReq for chapter without id", err)
	}

	// Non-chapter types must not carry one.
	chapterID := uint(1)
	if _, err := svc.Submit(project.ID, editor.ID, &SubmitChangeRequest{
		ContentType:     models.ContentTypeOutline,
		ChapterID:       &chapterID,
		ProposedContent: "x",
	}); err != ErrInvalidChangeReq {
		t.Errorf("err = %v, expected ErrInvalidChangeReq for outline with chapter id", err)
	}

	// Missing chapter.
	missing := uint(9999)
	if _, err := svc.Submit(project.ID, editor.ID, &SubmitChangeRequest{
		ContentType:     models.ContentTypeChapter,
		ChapterID:       &missing,
		ProposedContent: "x",
	}); err != ErrChapterNotFound {
		t.Errorf("err = %v, expected ErrChapterNotFound", err)
	}
}

func TestSubmit_Authorization(t *testing.T) {
	db := newTestDB(t)
	owner, _, project := seedProject(t, db)
	svc := NewPendingChangeService(db)

	outsider := models.User{Username: "outsider", Role: "user", IsActive: true}
	if err := db.Create(&outsider).Error; err != nil {
		t.Fatalf("failed to create outsider: %v", err)
	}

	if _, err := svc.Submit(project.ID, outsider.ID, &SubmitChangeRequest{
		ContentType:     models.ContentTypeOutline,
		ProposedContent: "x",
	}); err != ErrAccessDenied {
		t.Errorf("err = %v, expected ErrAccessDenied for non-member", err)
	}

	// Owners can submit against their own project.
	if _, err := svc.Submit(project.ID, owner.ID, &SubmitChangeRequest{
		ContentType:     models.ContentTypeOutline,
		ProposedContent: "x",
	}); err != nil {
		t.Errorf("owner submit failed: %v", err)
	}

	if _, err := svc.Submit(9999, owner.ID, &SubmitChangeRequest{
		ContentType:     models.ContentTypeOutline,
		ProposedContent: "x",
	}); err != ErrProjectNotFound {
		t.Errorf("err = %v, expected ErrProjectNotFound", err)
	}
}

func TestValidDecisionAndStatusMapping(t *testing.T) {
	for _, d := range []string{models.DecisionApprove, models.DecisionReject, models.DecisionRequestRevision} {
		if !models.ValidDecision(d) {
			t.Errorf("ValidDecision(%q) = false, expected true", d)
		}
	}
	for _, d := range []string{"", "approved", "maybe", "APPROVE"} {
		if models.ValidDecision(d) {
			t.Errorf("ValidDecision(%q) = true, expected false", d)
		}
	}

	if got := models.StatusForDecision(models.DecisionApprove); got != models.ChangeStatusApproved {
		t.Errorf("StatusForDecision(approve) = %q", got)
	}
	if got := models.StatusForDecision(models.DecisionReject); got != models.ChangeStatusRejected {
		t.Errorf("StatusForDecision(reject) = %q", got)
	}
	if got := models.StatusForDecision(models.DecisionRequestRevision); got != models.ChangeStatusNeedsRevision {
		t.Errorf("StatusForDecision(request_revision) = %q", got)
	}
}
