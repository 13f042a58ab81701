// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/AccelByte/extend-experience-tracker/pkg/buffer"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrGroupNotFound is returned when a group row is required but missing.
var ErrGroupNotFound = errors.New("group not found")

// Repository reads and writes the three experience aggregates.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on top of db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PersistBatch adds every delta to the global, local and group aggregates,
// in that order, inside one transaction. Each table is written with a single
// insert-or-add statement. An empty batch does nothing.
func (r *Repository) PersistBatch(ctx context.Context, deltas []buffer.Delta) error {
	if len(deltas) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertGlobal(tx, deltas); err != nil {
			return err
		}
		if err := upsertLocal(tx, deltas); err != nil {
			return err
		}
		return upsertGroups(tx, deltas)
	})
}

func upsertGlobal(tx *gorm.DB, deltas []buffer.Delta) error {
	rows := make([]GlobalExperience, 0, len(deltas))
	for _, d := range deltas {
		name := d.Name
		if name == "" {
			name = UnknownName
		}
		rows = append(rows, GlobalExperience{
			UserID:          d.UserID,
			Name:            name,
			TotalExperience: d.Amount,
		})
	}

	// the stored name follows the latest display name of the user
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_experience": gorm.Expr("global_experience.total_experience + excluded.total_experience"),
			"name":             gorm.Expr("excluded.name"),
		}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert global experience: %w", err)
	}
	return nil
}

func upsertLocal(tx *gorm.DB, deltas []buffer.Delta) error {
	rows := make([]LocalExperience, 0, len(deltas))
	for _, d := range deltas {
		rows = append(rows, LocalExperience{
			UserID:     d.UserID,
			GroupID:    d.GroupID,
			Experience: d.Amount,
		})
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "group_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"experience": gorm.Expr("local_experience.experience + excluded.experience"),
		}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert local experience: %w", err)
	}
	return nil
}

// upsertGroups sums the batch per group first so that no group appears twice
// in one statement.
func upsertGroups(tx *gorm.DB, deltas []buffer.Delta) error {
	sums := make(map[int64]int64)
	for _, d := range deltas {
		sums[d.GroupID] += d.Amount
	}

	rows := make([]GroupExperience, 0, len(sums))
	for groupID, amount := range sums {
		rows = append(rows, GroupExperience{GroupID: groupID, Experience: amount})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].GroupID < rows[j].GroupID })

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "group_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"experience": gorm.Expr("group_experience.experience + excluded.experience"),
		}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert group experience: %w", err)
	}
	return nil
}

// GlobalExperience returns the stored total of userID, or zero when the user
// has no row yet.
func (r *Repository) GlobalExperience(ctx context.Context, userID int64) (int64, error) {
	var row GlobalExperience
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load global experience of %d: %w", userID, err)
	}
	return row.TotalExperience, nil
}

// LocalExperience returns the stored experience of userID inside groupID, or
// zero when there is no row yet.
func (r *Repository) LocalExperience(ctx context.Context, userID, groupID int64) (int64, error) {
	var row LocalExperience
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load local experience of %d in %d: %w", userID, groupID, err)
	}
	return row.Experience, nil
}

// RenameGroup updates the name stored on the group row.
func (r *Repository) RenameGroup(ctx context.Context, groupID int64, name string) error {
	res := r.db.WithContext(ctx).
		Model(&GroupExperience{}).
		Where("group_id = ?", groupID).
		Update("name", name)
	if res.Error != nil {
		return fmt.Errorf("failed to rename group %d: %w", groupID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	logrus.Infof("renamed group %d to %q", groupID, name)
	return nil
}

// SetGroupUserCount stores the member count of groupID, creating the group
// row if it does not exist yet.
func (r *Repository) SetGroupUserCount(ctx context.Context, groupID int64, count int) error {
	if count < 0 {
		count = 0
	}

	row := GroupExperience{GroupID: groupID, UserCount: count}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_count"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to set user count of group %d: %w", groupID, err)
	}
	return nil
}
