// file: internals/features/college/departments/controller/department_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "campusschedule_backend/internals/features/college/departments/dto"
	m "campusschedule_backend/internals/features/college/departments/model"
	facultyModel "campusschedule_backend/internals/features/college/faculties/model"
	timetableModel "campusschedule_backend/internals/features/college/timetable/model"
	helper "campusschedule_backend/internals/helpers"
)

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB, v *validator.Validate) *DepartmentController {
	return &DepartmentController{DB: db, Validate: v}
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "Nama department sudah dipakai.")
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func (ctl *DepartmentController) paramID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Params("department_id"))
	id, err := uuid.Parse(raw)
	return id, err == nil
}

/* =========================
   CRUD
   ========================= */

// Create
func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req d.DepartmentCreateDTO
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Department.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ent := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		log.Printf("[Department.Create] DB error: %v", err)
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Department berhasil dibuat", d.FromModel(ent))
}

// List (publik)
func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.UserContext()).Model(&m.DepartmentModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[Department.List] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var ents []m.DepartmentModel
	if err := q.
		Order("department_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&ents).Error; err != nil {
		log.Printf("[Department.List] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", d.FromModels(ents),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GetByID
func (ctl *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, ok := ctl.paramID(c)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}

	var ent m.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Department tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModel(ent))
}

// Semesters: daftar semester + mana yang aktif (dipakai dropdown FE).
func (ctl *DepartmentController) Semesters(c *fiber.Ctx) error {
	id, ok := ctl.paramID(c)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}

	var ent m.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Department tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"department_id":              ent.DepartmentID,
		"department_semesters":       []string(ent.DepartmentSemesters),
		"department_active_semester": ent.DepartmentActiveSemester,
	})
}

// Update (partial)
func (ctl *DepartmentController) Update(c *fiber.Ctx) error {
	id, ok := ctl.paramID(c)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}

	var req d.DepartmentUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var ent m.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Department tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		log.Printf("[Department.Update] DB error: %v", err)
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Department berhasil diperbarui", d.FromModel(ent))
}

// SetActiveSemester: satu-satunya tombol yang menggeser arbitrase
// semester aktif. Entries tidak disentuh, hanya metadata.
func (ctl *DepartmentController) SetActiveSemester(c *fiber.Ctx) error {
	id, ok := ctl.paramID(c)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}

	var req d.SetActiveSemesterDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var ent m.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Department tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	ent.DepartmentActiveSemester = req.DepartmentActiveSemester
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&ent).
		Update("department_active_semester", req.DepartmentActiveSemester).Error; err != nil {
		log.Printf("[Department.SetActiveSemester] DB error: %v", err)
		return writePGError(c, err)
	}

	log.Printf("[Department.SetActiveSemester] ✅ %s → %s", ent.DepartmentName, req.DepartmentActiveSemester)
	return helper.JsonUpdated(c, "Semester aktif diperbarui", d.FromModel(ent))
}

// Delete: hard delete. Entries ikut terhapus via FK cascade.
func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, ok := ctl.paramID(c)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		log.Printf("[Department.Delete] DB error: %v", res.Error)
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Department tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Department berhasil dihapus", fiber.Map{"department_id": id})
}

/* =========================
   Dashboard
   ========================= */

// Dashboard: hitungan agregat untuk landing admin.
func (ctl *DepartmentController) Dashboard(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	var departments, faculties, entries, histories int64
	if err := db.Model(&m.DepartmentModel{}).Count(&departments).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&facultyModel.FacultyModel{}).Count(&faculties).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&timetableModel.TimetableEntryModel{}).Count(&entries).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&timetableModel.TimetableHistoryModel{}).Count(&histories).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"total_departments": departments,
		"total_faculties":   faculties,
		"total_entries":     entries,
		"total_histories":   histories,
	})
}
