package db

import (
	"log"

	"gorm.io/gorm"
)

// SchemaMigration records one applied migration, so each step in the chain
// runs exactly once, in order.
type SchemaMigration struct {
	ID        string `gorm:"primaryKey;size:64"`
	AppliedAt int64  `gorm:"autoCreateTime"`
}

type migration struct {
	id  string
	run func(g *gorm.DB) error
}

// migrations is the ordered chain. Append only; never reorder or edit an
// entry that has shipped. The early steps cover columns that were added to
// live deployments after the initial schema.
var migrations = []migration{
	{
		id: "0001_comment_parent_id",
		run: func(g *gorm.DB) error {
			return addColumn(g, "comments", "parent_id", "parent_id bigint")
		},
	},
	{
		id: "0002_user_ban_appeal_reason",
		run: func(g *gorm.DB) error {
			return addColumn(g, "users", "ban_appeal_reason", "ban_appeal_reason text")
		},
	},
	{
		id: "0003_user_profile_columns",
		run: func(g *gorm.DB) error {
			if err := addColumn(g, "users", "position", "position varchar(120)"); err != nil {
				return err
			}
			return addColumn(g, "users", "last_username_change", "last_username_change timestamp")
		},
	},
	{
		id: "0004_post_view_count",
		run: func(g *gorm.DB) error {
			return addColumn(g, "posts", "view_count", "view_count integer DEFAULT 0")
		},
	},
}

func addColumn(g *gorm.DB, table, column, definition string) error {
	if g.Migrator().HasColumn(table, column) {
		return nil
	}
	return g.Exec("ALTER TABLE " + table + " ADD COLUMN " + definition).Error
}

// RunMigrations applies every unapplied step of the chain in order and
// records each one in schema_migrations.
func RunMigrations(g *gorm.DB) error {
	if err := g.AutoMigrate(&SchemaMigration{}); err != nil {
		return err
	}

	for _, m := range migrations {
		var count int64
		if err := g.Model(&SchemaMigration{}).Where("id = ?", m.id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		err := g.Transaction(func(tx *gorm.DB) error {
			if err := m.run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{ID: m.id}).Error
		})
		if err != nil {
			return err
		}
		log.Printf("Applied migration %s", m.id)
	}
	return nil
}
