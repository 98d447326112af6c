package catalog

import (
	"context"
	"testing"

	"github.com/danielfrrokaj/datarifish-menu/internal/category"
	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
	"github.com/danielfrrokaj/datarifish-menu/internal/menu"
)

func seed(t *testing.T) (*Service, string) {
	t.Helper()
	ctx := context.Background()

	catRepo := category.NewInMemoryRepository()
	zero := 0
	seafood := &category.Category{
		ID:         "seafood",
		OrderIndex: &zero,
		Translations: []category.Translation{
			{Language: i18n.English, Name: "Seafood"},
			{Language: i18n.Albanian, Name: "Fruta Deti"},
		},
	}
	if err := catRepo.Insert(ctx, seafood); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	itemRepo := menu.NewInMemoryRepository()
	soupPrice := 650
	items := []*menu.Item{
		{
			ID: "soup", CategoryID: "seafood", Price: &soupPrice, Available: true,
			Translations: []menu.Translation{
				{Language: i18n.English, Name: "Fish Soup", Description: "catch of the day"},
				{Language: i18n.Albanian, Name: "Supë Peshku"},
			},
		},
		{
			ID: "octopus", CategoryID: "seafood", Available: true,
			Translations: []menu.Translation{
				{Language: i18n.English, Name: "Grilled Octopus"},
			},
		},
		{
			ID: "off-menu", CategoryID: "seafood", Available: false,
			Translations: []menu.Translation{
				{Language: i18n.English, Name: "Lobster"},
			},
		},
	}
	for _, it := range items {
		if err := itemRepo.Insert(ctx, it); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	return NewService(catRepo, itemRepo), "seafood"
}

func TestCategoriesResolveRequestedLanguage(t *testing.T) {
	service, _ := seed(t)

	views, err := service.Categories(context.Background(), i18n.Albanian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 || views[0].Name != "Fruta Deti" {
		t.Fatalf("expected Albanian category name, got %+v", views)
	}
}

func TestItemsHideUnavailableOnPublicListing(t *testing.T) {
	service, catID := seed(t)

	views, err := service.Items(context.Background(), catID, i18n.English, Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 available items, got %d", len(views))
	}

	all, err := service.Items(context.Background(), catID, i18n.English, Filter{IncludeUnavailable: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 items for admin listing, got %d", len(all))
	}
}

func TestItemsSearchMatchesResolvedFields(t *testing.T) {
	service, catID := seed(t)
	ctx := context.Background()

	// Name match, case-insensitive.
	views, err := service.Items(ctx, catID, i18n.English, Filter{Search: "fish"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 || views[0].ID != "soup" {
		t.Fatalf("expected soup by name, got %+v", views)
	}

	// Description match.
	views, _ = service.Items(ctx, catID, i18n.English, Filter{Search: "CATCH"})
	if len(views) != 1 || views[0].ID != "soup" {
		t.Fatalf("expected soup by description, got %+v", views)
	}

	// Category-name match returns every (available) item of the category.
	views, _ = service.Items(ctx, catID, i18n.English, Filter{Search: "seafood"})
	if len(views) != 2 {
		t.Fatalf("expected both items via category name, got %d", len(views))
	}

	// Search runs over the resolved language.
	views, _ = service.Items(ctx, catID, i18n.Albanian, Filter{Search: "supë"})
	if len(views) != 1 || views[0].Name != "Supë Peshku" {
		t.Fatalf("expected Albanian match, got %+v", views)
	}

	// Empty term returns everything.
	views, _ = service.Items(ctx, catID, i18n.English, Filter{Search: "   "})
	if len(views) != 2 {
		t.Fatalf("expected full listing for empty search, got %d", len(views))
	}
}

func TestItemsMissingCategory(t *testing.T) {
	service, _ := seed(t)

	_, err := service.Items(context.Background(), "ghost", i18n.English, Filter{})
	if err != category.ErrNotFound {
		t.Fatalf("expected category.ErrNotFound, got %v", err)
	}
}

func TestItemsResolveWithFallback(t *testing.T) {
	service, catID := seed(t)

	views, err := service.Items(context.Background(), catID, i18n.Italian, Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range views {
		if v.ID == "soup" && v.Name != "Fish Soup" {
			t.Fatalf("expected English fallback for missing Italian, got %q", v.Name)
		}
	}
}
