// file: internals/features/college/faculties/model/faculty_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type FacultyModel struct {
	// PK
	FacultyID uuid.UUID `gorm:"column:faculty_id;type:uuid;default:gen_random_uuid();primaryKey" json:"faculty_id"`

	FacultyName string `gorm:"column:faculty_name;type:varchar(100);not null" json:"faculty_name"`

	// Home department hanya untuk display; pengecekan konflik lintas department
	// tidak peduli faculty ini "milik" siapa.
	FacultyDepartmentID *uuid.UUID `gorm:"column:faculty_department_id;type:uuid" json:"faculty_department_id,omitempty"`

	// Audit
	FacultyCreatedAt time.Time `gorm:"column:faculty_created_at;type:timestamptz;not null;autoCreateTime" json:"faculty_created_at"`
	FacultyUpdatedAt time.Time `gorm:"column:faculty_updated_at;type:timestamptz;not null;autoUpdateTime" json:"faculty_updated_at"`
}

func (FacultyModel) TableName() string { return "faculties" }
