// file: internals/features/college/faculties/controller/faculty_controller.go
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

	d "campusschedule_backend/internals/features/college/faculties/dto"
	m "campusschedule_backend/internals/features/college/faculties/model"
	helper "campusschedule_backend/internals/helpers"
)

type FacultyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFacultyController(db *gorm.DB, v *validator.Validate) *FacultyController {
	return &FacultyController{DB: db, Validate: v}
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
			return helper.JsonError(c, http.StatusConflict, "Faculty dengan nama tersebut sudah ada.")
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Department tidak ditemukan (FK violation).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func paramFacultyID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Params("faculty_id"))
	id, err := uuid.Parse(raw)
	return id, err == nil
}

/* =========================
   CRUD
   ========================= */

func (ctl *FacultyController) Create(c *fiber.Ctx) error {
	var req d.FacultyCreateDTO
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Faculty.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ent, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		log.Printf("[Faculty.Create] DB error: %v", err)
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Faculty berhasil dibuat", d.FromModel(ent))
}

// List: ?department_id= untuk scoped list, tanpa query = semua faculty.
func (ctl *FacultyController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&m.FacultyModel{})

	if raw := strings.TrimSpace(c.Query("department_id")); raw != "" {
		deptID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
		}
		q = q.Where("faculty_department_id = ?", deptID)
	}

	p := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[Faculty.List] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var ents []m.FacultyModel
	if err := q.
		Order("faculty_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&ents).Error; err != nil {
		log.Printf("[Faculty.List] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", d.FromModels(ents),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

func (ctl *FacultyController) GetByID(c *fiber.Ctx) error {
	id, ok := paramFacultyID(c)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "faculty_id tidak valid")
	}

	var ent m.FacultyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "faculty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Faculty tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModel(ent))
}

func (ctl *FacultyController) Update(c *fiber.Ctx) error {
	id, ok := paramFacultyID(c)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "faculty_id tidak valid")
	}

	var req d.FacultyUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var ent m.FacultyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "faculty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Faculty tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyUpdates(&ent); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		log.Printf("[Faculty.Update] DB error: %v", err)
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Faculty berhasil diperbarui", d.FromModel(ent))
}

// Delete: entries yang menunjuk faculty ini dibiarkan ke FK ON DELETE;
// kalau masih dipakai timetable, PG menolak dan kita kembalikan 409.
func (ctl *FacultyController) Delete(c *fiber.Ctx) error {
	id, ok := paramFacultyID(c)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "faculty_id tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.FacultyModel{}, "faculty_id = ?", id)
	if res.Error != nil {
		var pgErr pgSQLErr
		if errors.As(res.Error, &pgErr) && pgErr.SQLState() == "23503" {
			return helper.JsonError(c, http.StatusConflict, "Faculty masih dipakai di timetable, hapus entry-nya dulu.")
		}
		log.Printf("[Faculty.Delete] DB error: %v", res.Error)
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Faculty tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Faculty berhasil dihapus", fiber.Map{"faculty_id": id})
}
