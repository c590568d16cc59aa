package cmd

import (
	"context"
	"log"

	"github.com/schollz/progressbar/v3"

	"restodash/internal/auth"
	"restodash/internal/factories"
	"restodash/internal/models"
	"restodash/internal/store"
)

// bootstrapPassword is the out-of-the-box admin credential, matching the
// login form's pre-filled value.
const bootstrapPassword = "password123"

// seed installs the default fixtures where storage is empty, then grows the
// sample data to whatever the seed knobs ask for.
func seed(ctx context.Context, st *store.Store, cfg *models.Config) error {
	adminHash, err := auth.HashPassword(bootstrapPassword)
	if err != nil {
		return err
	}

	now := st.Now()
	if err := st.SeedIfEmpty(ctx,
		factories.DefaultMenuItems(),
		factories.DefaultCategories(),
		factories.DefaultUsers(adminHash),
		factories.DefaultNotifications(now),
		factories.DefaultOrders(),
	); err != nil {
		return err
	}

	extra := cfg.SeedUsers + cfg.SeedMenuItems + cfg.SeedOrders
	if extra == 0 {
		return nil
	}

	log.Printf("Generating %d sample records", extra)
	bar := progressbar.Default(int64(extra), "seeding sample data")
	stamp := now.Format(models.DateLayout)

	var mf factories.MenuItemFactory
	categories := st.Categories()
	for i := 0; i < cfg.SeedMenuItems; i++ {
		category := categories[i%len(categories)]
		item := mf.CreateMenuItem(category, stamp)
		st.AddMenuItem(models.MenuItemInput{
			Name:        item.Name,
			Category:    item.Category,
			Description: item.Description,
			Price:       item.Price,
			Image:       item.Image,
			Status:      item.Status,
		})
		bar.Add(1)
	}

	var uf factories.UserFactory
	for i := 0; i < cfg.SeedUsers; i++ {
		if _, err := st.CreateUser(ctx, uf.CreateUser(adminHash, stamp)); err != nil {
			return err
		}
		bar.Add(1)
	}

	var of factories.OrderFactory
	for i := 0; i < cfg.SeedOrders; i++ {
		if _, err := st.AddOrder(ctx, of.CreateOrder(stamp)); err != nil {
			return err
		}
		bar.Add(1)
	}

	return bar.Finish()
}
