// file: internals/features/college/departments/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DepartmentModel struct {
	// PK
	DepartmentID uuid.UUID `gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey" json:"department_id"`

	DepartmentName string `gorm:"column:department_name;type:varchar(100);not null;uniqueIndex:uq_departments_name" json:"department_name"`
	DepartmentCode string `gorm:"column:department_code;type:varchar(20)" json:"department_code,omitempty"`

	// Semester yang ditawarkan department ini (mis. BCA punya 6, MCA punya 4)
	DepartmentSemesters pq.StringArray `gorm:"column:department_semesters;type:text[]" json:"department_semesters"`

	// Tepat satu semester aktif per department. Mengganti nilai ini adalah
	// single UPDATE tanpa efek samping ke entries; evaluasi konflik dilakukan
	// lazy di ConflictService.
	DepartmentActiveSemester string `gorm:"column:department_active_semester;type:varchar(20);not null;default:'Semester 1'" json:"department_active_semester"`

	// Audit
	DepartmentCreatedAt time.Time `gorm:"column:department_created_at;type:timestamptz;not null;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time `gorm:"column:department_updated_at;type:timestamptz;not null;autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string { return "departments" }
