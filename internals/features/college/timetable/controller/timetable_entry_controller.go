// file: internals/features/college/timetable/controller/timetable_entry_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusschedule_backend/internals/constants"
	d "campusschedule_backend/internals/features/college/timetable/dto"
	m "campusschedule_backend/internals/features/college/timetable/model"
	svc "campusschedule_backend/internals/features/college/timetable/service"
	helper "campusschedule_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableEntryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Entries  *svc.EntryService
}

func NewTimetableEntryController(db *gorm.DB, v *validator.Validate) *TimetableEntryController {
	return &TimetableEntryController{
		DB:       db,
		Validate: v,
		Entries:  svc.NewEntryService(db),
	}
}

/* =========================
   Create (validateAndSave)
   ========================= */

func (ctl *TimetableEntryController) Create(c *fiber.Ctx) error {
	var req d.TimetableEntryCreateDTO
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[TimetableEntry.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()

	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			log.Printf("[TimetableEntry.Create] Validation error: %v", err)
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	cand, err := req.ToCandidate()
	if err != nil {
		return writeEngineError(c, err)
	}

	savedIDs, err := ctl.Entries.ValidateAndSave(c.UserContext(), cand)
	if err != nil {
		log.Printf("[TimetableEntry.Create] ValidateAndSave: %v", err)
		return writeEngineError(c, err)
	}

	return helper.JsonCreated(c, "Entry tersimpan", fiber.Map{
		"intent":    cand.Intent().String(),
		"entry_ids": savedIDs,
	})
}

/* =========================
   Check conflicts (dry-run)
   ========================= */

func (ctl *TimetableEntryController) CheckConflicts(c *fiber.Ctx) error {
	var req d.ConflictCheckDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	facultyID, err := uuid.Parse(req.FacultyID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "faculty_id bukan UUID valid")
	}
	deptID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "department_id bukan UUID valid")
	}

	var excludeID *uuid.UUID
	if req.ExcludeID != nil && *req.ExcludeID != "" {
		id, err := uuid.Parse(*req.ExcludeID)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "exclude_id bukan UUID valid")
		}
		excludeID = &id
	}

	conflicts, err := ctl.Entries.Conflicts.FindConflicts(c.UserContext(), svc.ConflictQuery{
		FacultyID: facultyID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Subject:   req.Subject,
		IsLab:     req.IsLab,
		Scope:     svc.ConflictScope{DepartmentID: deptID, Semester: req.Semester},
		ExcludeID: excludeID,
	})
	if err != nil {
		log.Printf("[TimetableEntry.CheckConflicts] %v", err)
		return writeEngineError(c, err)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"has_conflict": len(conflicts) > 0,
		"conflicts":    conflicts,
	})
}

/* =========================
   List / Delete
   ========================= */

func (ctl *TimetableEntryController) List(c *fiber.Ctx) error {
	deptID, err := parseUUIDParam(c, "department_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.TimetableEntryModel{}).
		Where("timetable_entry_department_id = ?", deptID)
	if semester := c.Query("semester"); semester != "" {
		q = q.Where("timetable_entry_semester = ?", semester)
	}
	if day := c.Query("day"); day != "" {
		q = q.Where("timetable_entry_day = ?", day)
	}

	p := helper.ResolvePaging(c, 50, 200)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[TimetableEntry.List] %v", err)
		return writeEngineError(c, err)
	}

	var entries []m.TimetableEntryModel
	if err := q.
		Order("timetable_entry_day ASC, timetable_entry_start_time ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&entries).Error; err != nil {
		log.Printf("[TimetableEntry.List] %v", err)
		return writeEngineError(c, err)
	}

	// includes: opsi dropdown form entry di FE
	return helper.JsonListEx(c, "ok", d.EntriesFromModels(entries),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit),
		fiber.Map{
			"days":      constants.WeekDays,
			"semesters": constants.SemesterLabels,
		})
}

func (ctl *TimetableEntryController) Delete(c *fiber.Ctx) error {
	entryID, err := parseUUIDParam(c, "entry_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "entry_id tidak valid")
	}

	deleted, err := ctl.Entries.DeleteEntry(c.UserContext(), entryID)
	if err != nil {
		log.Printf("[TimetableEntry.Delete] %v", err)
		return writeEngineError(c, err)
	}
	return helper.JsonDeleted(c, "Entry dihapus", d.EntryFromModel(*deleted))
}

// DeleteAll menghapus seluruh entries satu department+semester (tombol
// "clear timetable" di UI lama). Mengembalikan jumlah baris terhapus.
func (ctl *TimetableEntryController) DeleteAll(c *fiber.Ctx) error {
	deptID, err := parseUUIDParam(c, "department_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}
	semester := c.Query("semester")
	if semester == "" {
		return helper.JsonError(c, http.StatusBadRequest, "query semester wajib diisi")
	}

	count, err := ctl.Entries.DeleteAllEntries(c.UserContext(), deptID, semester)
	if err != nil {
		log.Printf("[TimetableEntry.DeleteAll] %v", err)
		return writeEngineError(c, err)
	}
	return helper.JsonDeleted(c, "Semua entry dihapus", fiber.Map{"deleted_count": count})
}
