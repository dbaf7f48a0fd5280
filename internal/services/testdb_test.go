package services

import (
	"fmt"
	"testing"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBCounter int

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBCounter++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Project{},
		&models.ProjectContent{},
		&models.ProjectChapter{},
		&models.ProjectCollaborator{},
		&models.PendingChange{},
		&models.ApprovalDecision{},
		&models.WorkflowSubmission{},
		&models.ProjectActivity{},
		&models.Notification{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedProject creates an owner, an editor (active collaborator) and a project.
func seedProject(t *testing.T, db *gorm.DB) (owner, editor models.User, project models.Project) {
	t.Helper()

	owner = models.User{Username: "owner", Role: "user", IsActive: true}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}
	editor = models.User{Username: "editor", Role: "user", IsActive: true}
	if err := db.Create(&editor).Error; err != nil {
		t.Fatalf("failed to create editor: %v", err)
	}

	project = models.Project{
		OwnerID:  owner.ID,
		Title:    "The Long Winter",
		Synopsis: "Original synopsis",
		Format:   "novel",
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	collab := models.ProjectCollaborator{
		ProjectID: project.ID,
		UserID:    editor.ID,
		Role:      models.CollabRoleEditor,
		Status:    models.CollabStatusActive,
	}
	if err := db.Create(&collab).Error; err != nil {
		t.Fatalf("failed to create collaborator: %v", err)
	}

	return owner, editor, project
}

func seedPendingChange(t *testing.T, db *gorm.DB, project models.Project, editor models.User, contentType string, chapterID *uint, proposed string) models.PendingChange {
	t.Helper()

	change := models.PendingChange{
		ProjectID:       project.ID,
		EditorID:        editor.ID,
		ContentType:     contentType,
		ChapterID:       chapterID,
		ProposedContent: proposed,
		ContentTitle:    "Edit",
		Status:          models.ChangeStatusPending,
	}
	if err := db.Create(&change).Error; err != nil {
		t.Fatalf("failed to create pending change: %v", err)
	}
	return change
}
