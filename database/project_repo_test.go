package database

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/anand7670/portfolio-backend/models"
)

func addProject(t *testing.T, database Database, project *models.Project) *models.Project {
	t.Helper()
	if project.Status == "" {
		project.Status = models.StatusCompleted
	}
	if err := database.ProjectRepo().Add(project); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	return project
}

func TestProjectFindAllOrdering(t *testing.T) {
	database := newTestDatabase(t)

	addProject(t, database, &models.Project{Title: "Second", Description: "d", Order: 2})
	addProject(t, database, &models.Project{Title: "Zeroth", Description: "d", Order: 0})
	addProject(t, database, &models.Project{Title: "First", Description: "d", Order: 1})

	projects, err := database.ProjectRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}

	want := []string{"Zeroth", "First", "Second"}
	if len(projects) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(projects))
	}
	for i, title := range want {
		if projects[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, projects[i].Title)
		}
	}
}

func TestProjectFindAllOrderTieBreaksByNewest(t *testing.T) {
	database := newTestDatabase(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	addProject(t, database, &models.Project{Title: "Older", Description: "d", Order: 1, CreatedAt: base})
	addProject(t, database, &models.Project{Title: "Newer", Description: "d", Order: 1, CreatedAt: base.Add(time.Hour)})

	projects, err := database.ProjectRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "Newer" {
		t.Errorf("equal sort orders must rank newer projects first, got %q", projects[0].Title)
	}
}

func TestProjectCRUD(t *testing.T) {
	database := newTestDatabase(t)

	project := addProject(t, database, &models.Project{
		Title:        "CRUD Target",
		Description:  "d",
		Technologies: []string{"Go", "PostgreSQL"},
		Images: []models.ProjectImage{
			{Filename: "img-1.png", Path: "uploads/projects/img-1.png", Alt: "CRUD Target"},
		},
		Status: models.StatusInProgress,
	})
	if project.ID == uuid.Nil {
		t.Fatal("Add must assign an ID")
	}

	loaded, err := database.ProjectRepo().FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected stored project")
	}
	if len(loaded.Technologies) != 2 || loaded.Technologies[0] != "Go" {
		t.Errorf("unexpected technologies round trip: %v", loaded.Technologies)
	}
	if len(loaded.Images) != 1 || loaded.Images[0].Alt != "CRUD Target" {
		t.Errorf("unexpected images round trip: %+v", loaded.Images)
	}

	loaded.Title = "Renamed"
	loaded.Status = models.StatusCompleted
	if err := database.ProjectRepo().Update(loaded); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	reloaded, err := database.ProjectRepo().FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if reloaded.Title != "Renamed" || reloaded.Status != models.StatusCompleted {
		t.Errorf("update not persisted: %+v", reloaded)
	}

	if err := database.ProjectRepo().Delete(project.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	gone, err := database.ProjectRepo().FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if gone != nil {
		t.Error("expected project to be deleted")
	}
}

func TestProjectFindByIDMissing(t *testing.T) {
	database := newTestDatabase(t)

	project, err := database.ProjectRepo().FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if project != nil {
		t.Errorf("expected nil for unknown id, got %+v", project)
	}
}
