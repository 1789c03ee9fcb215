package filestore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xhd2015/text-animate/data/storage"
	"github.com/xhd2015/text-animate/models"
)

func newTestService(t *testing.T) storage.ProfileService {
	t.Helper()
	service, err := NewProfileService(filepath.Join(t.TempDir(), "profiles.json"))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return service
}

func TestAddGetRoundTrip(t *testing.T) {
	service := newTestService(t)

	id, err := service.Add(models.Profile{
		Name:    "banner",
		Text:    "Hello world",
		Preset:  "blurInUp",
		By:      "character",
		Stagger: 0.03,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id == 0 {
		t.Errorf("got id 0, expected assigned id")
	}

	got, err := service.Get("banner")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Text != "Hello world" || got.Preset != "blurInUp" || got.By != "character" {
		t.Errorf("got %+v, expected saved fields back", got)
	}
	if got.CreateTime.IsZero() || got.UpdateTime.IsZero() {
		t.Errorf("expected create/update time filled")
	}
}

func TestAddDuplicateNameRejected(t *testing.T) {
	service := newTestService(t)

	if _, err := service.Add(models.Profile{Name: "dup", Text: "a"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := service.Add(models.Profile{Name: "dup", Text: "b"}); err == nil {
		t.Errorf("expected duplicate name rejected")
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	service := newTestService(t)

	_, err := service.Get("missing")
	if !errors.Is(err, storage.ErrProfileNotFound) {
		t.Errorf("got %v, expected ErrProfileNotFound", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	service := newTestService(t)

	if _, err := service.Add(models.Profile{Name: "p", Text: "old", Preset: "fadeIn"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	newText := "new"
	if err := service.Update("p", models.ProfileOptional{Text: &newText}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := service.Get("p")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Text != "new" {
		t.Errorf("text = %q, expected updated", got.Text)
	}
	if got.Preset != "fadeIn" {
		t.Errorf("preset = %q, expected untouched", got.Preset)
	}
}

func TestDeleteAndPersistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.json")

	service, err := NewProfileService(path)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	if _, err := service.Add(models.Profile{Name: "keep", Text: "a"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := service.Add(models.Profile{Name: "drop", Text: "b"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := service.Delete("drop"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// reopen from disk
	reopened, err := NewProfileService(path)
	if err != nil {
		t.Fatalf("failed to reopen service: %v", err)
	}
	profiles, total, err := reopened.List(storage.ProfileListOptions{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(profiles) != 1 || profiles[0].Name != "keep" {
		t.Errorf("got %d profiles (%v), expected only 'keep'", total, profiles)
	}

	if err := reopened.Delete("missing"); !errors.Is(err, storage.ErrProfileNotFound) {
		t.Errorf("got %v, expected ErrProfileNotFound", err)
	}
}

func TestListFilterAndSort(t *testing.T) {
	service := newTestService(t)

	for _, p := range []models.Profile{
		{Name: "zeta", Text: "slide demo"},
		{Name: "alpha", Text: "fade demo"},
		{Name: "mid", Text: "other"},
	} {
		if _, err := service.Add(p); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	profiles, total, err := service.List(storage.ProfileListOptions{Filter: "demo"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, expected 2 matching filter", total)
	}
	// default sort is by name ascending
	if profiles[0].Name != "alpha" || profiles[1].Name != "zeta" {
		t.Errorf("got order %v, expected alpha, zeta", []string{profiles[0].Name, profiles[1].Name})
	}
}
