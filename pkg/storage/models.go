// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package storage

// UnknownName is stored when no display name was observed for a user.
const UnknownName = "unknown"

// GlobalExperience is the total experience of a user across all groups.
type GlobalExperience struct {
	UserID          int64  `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Name            string `gorm:"column:name;size:256;not null"`
	TotalExperience int64  `gorm:"column:total_experience;not null;default:0"`
}

func (GlobalExperience) TableName() string { return "global_experience" }

// LocalExperience is the experience of a user inside one group.
type LocalExperience struct {
	UserID     int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	GroupID    int64 `gorm:"column:group_id;primaryKey;autoIncrement:false;index"`
	Experience int64 `gorm:"column:experience;not null;default:0"`
}

func (LocalExperience) TableName() string { return "local_experience" }

// GroupExperience is the summed experience of every member of a group.
type GroupExperience struct {
	GroupID    int64  `gorm:"column:group_id;primaryKey;autoIncrement:false"`
	Name       string `gorm:"column:name;size:256"`
	Experience int64  `gorm:"column:experience;not null;default:0"`
	UserCount  int    `gorm:"column:user_count;not null;default:0"`
}

func (GroupExperience) TableName() string { return "group_experience" }

// Models lists every table owned by this package, in migration order.
func Models() []interface{} {
	return []interface{}{
		&GlobalExperience{},
		&LocalExperience{},
		&GroupExperience{},
	}
}
