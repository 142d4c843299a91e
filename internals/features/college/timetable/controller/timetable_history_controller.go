// file: internals/features/college/timetable/controller/timetable_history_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

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

type TimetableHistoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Archives *svc.ArchiveService
}

func NewTimetableHistoryController(db *gorm.DB, v *validator.Validate) *TimetableHistoryController {
	return &TimetableHistoryController{
		DB:       db,
		Validate: v,
		Archives: svc.NewArchiveService(db),
	}
}

/* =========================
   Archive (copy, bukan move)
   ========================= */

func (ctl *TimetableHistoryController) Archive(c *fiber.Ctx) error {
	deptID, err := parseUUIDParam(c, "department_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}

	var req d.ArchiveTimetableDTO
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[TimetableHistory.Archive] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	rec, err := ctl.Archives.Archive(c.UserContext(), deptID, req.TimetableHistorySemester, req.TimetableHistoryYear)
	if err != nil {
		log.Printf("[TimetableHistory.Archive] %v", err)
		return writeEngineError(c, err)
	}

	return helper.JsonCreated(c, "Timetable berhasil diarsipkan", d.HistoryFromModel(*rec))
}

/* =========================
   Listing & detail
   ========================= */

func (ctl *TimetableHistoryController) ListByDepartment(c *fiber.Ctx) error {
	deptID, err := parseUUIDParam(c, "department_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.TimetableHistoryModel{}).
		Where("timetable_history_department_id = ?", deptID)

	p := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[TimetableHistory.List] %v", err)
		return writeEngineError(c, err)
	}

	var records []m.TimetableHistoryModel
	if err := q.
		Order("timetable_history_year DESC, timetable_history_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&records).Error; err != nil {
		log.Printf("[TimetableHistory.List] %v", err)
		return writeEngineError(c, err)
	}

	return helper.JsonList(c, "ok", d.HistoriesFromModels(records),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// Detail merender snapshot arsip lewat grid assembler yang sama dengan
// tampilan live.
func (ctl *TimetableHistoryController) Detail(c *fiber.Ctx) error {
	recordID, err := parseUUIDParam(c, "history_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "history_id tidak valid")
	}

	var record m.TimetableHistoryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&record, "timetable_history_id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return writeEngineError(c, svc.ErrHistoryNotFound)
		}
		log.Printf("[TimetableHistory.Detail] %v", err)
		return writeEngineError(c, err)
	}

	snapshot, err := svc.DecodeSnapshot(record.TimetableHistoryDataSnapshot)
	if err != nil {
		log.Printf("[TimetableHistory.Detail] snapshot rusak: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "snapshot arsip tidak bisa dibaca")
	}

	matrix := svc.BuildSnapshotMatrix(snapshot, constants.WeekDays)

	return helper.JsonOK(c, "ok", fiber.Map{
		"record": d.HistoryFromModel(record),
		"matrix": matrix,
	})
}

// Search: filter arsip lintas department by department/year/semester.
func (ctl *TimetableHistoryController) Search(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&m.TimetableHistoryModel{})

	if raw := c.Query("department_id"); raw != "" {
		deptID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "department_id tidak valid")
		}
		q = q.Where("timetable_history_department_id = ?", deptID)
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "year harus angka")
		}
		q = q.Where("timetable_history_year = ?", year)
	}
	if raw := c.Query("semester"); raw != "" {
		q = q.Where("timetable_history_semester ILIKE ?", "%"+raw+"%")
	}

	p := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[TimetableHistory.Search] %v", err)
		return writeEngineError(c, err)
	}

	var records []m.TimetableHistoryModel
	if err := q.
		Order("timetable_history_year DESC, timetable_history_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&records).Error; err != nil {
		log.Printf("[TimetableHistory.Search] %v", err)
		return writeEngineError(c, err)
	}

	return helper.JsonList(c, "ok", d.HistoriesFromModels(records),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
