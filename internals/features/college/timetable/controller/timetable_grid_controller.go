// file: internals/features/college/timetable/controller/timetable_grid_controller.go
package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusschedule_backend/internals/constants"
	deptModel "campusschedule_backend/internals/features/college/departments/model"
	m "campusschedule_backend/internals/features/college/timetable/model"
	svc "campusschedule_backend/internals/features/college/timetable/service"
	helper "campusschedule_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

// TimetableGridController merender matrix day×time untuk tampilan live dan
// untuk export. Semua format export adalah formatter murni di atas Matrix
// yang sama.
type TimetableGridController struct {
	DB *gorm.DB
}

func NewTimetableGridController(db *gorm.DB) *TimetableGridController {
	return &TimetableGridController{DB: db}
}

/* =========================
   Grid (live)
   ========================= */

func (ctl *TimetableGridController) Grid(c *fiber.Ctx) error {
	dept, semester, matrix, err := ctl.liveMatrix(c)
	if err != nil {
		log.Printf("[TimetableGrid.Grid] %v", err)
		return writeEngineError(c, err)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"department": fiber.Map{
			"department_id":              dept.DepartmentID,
			"department_name":            dept.DepartmentName,
			"department_active_semester": dept.DepartmentActiveSemester,
		},
		"semester": semester,
		"matrix":   matrix,
	})
}

/* =========================
   Export (formatter murni atas Matrix)
   ========================= */

func (ctl *TimetableGridController) ExportCSV(c *fiber.Ctx) error {
	dept, semester, matrix, err := ctl.liveMatrix(c)
	if err != nil {
		log.Printf("[TimetableGrid.ExportCSV] %v", err)
		return writeEngineError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{"Time"}, matrix.Days...)
	_ = w.Write(header)
	for _, row := range matrix.Rows {
		record := []string{row.TimeLabel}
		for _, day := range matrix.Days {
			record = append(record, cellText(row.Days[day]))
		}
		_ = w.Write(record)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("timetable_%s_%s.csv", dept.DepartmentName, strings.ReplaceAll(semester, " ", "_"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func (ctl *TimetableGridController) ExportJSON(c *fiber.Ctx) error {
	dept, semester, matrix, err := ctl.liveMatrix(c)
	if err != nil {
		log.Printf("[TimetableGrid.ExportJSON] %v", err)
		return writeEngineError(c, err)
	}

	filename := fmt.Sprintf("timetable_%s_%s.json", dept.DepartmentName, strings.ReplaceAll(semester, " ", "_"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(fiber.Map{
		"department": dept.DepartmentName,
		"semester":   semester,
		"days":       matrix.Days,
		"rows":       matrix.Rows,
	})
}

/* =========================
   Internal
   ========================= */

// liveMatrix: ambil department + entries live lalu rakit matrix. Semester
// default = semester aktif department.
func (ctl *TimetableGridController) liveMatrix(c *fiber.Ctx) (*deptModel.DepartmentModel, string, *svc.Matrix, error) {
	deptID, err := parseUUIDParam(c, "department_id")
	if err != nil {
		return nil, "", nil, svc.ErrDepartmentNotFound
	}

	tx := ctl.DB.WithContext(c.UserContext())

	var dept deptModel.DepartmentModel
	if err := tx.First(&dept, "department_id = ?", deptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", nil, svc.ErrDepartmentNotFound
		}
		return nil, "", nil, err
	}

	semester := c.Query("semester", dept.DepartmentActiveSemester)

	var entries []m.TimetableEntryModel
	if err := tx.
		Where("timetable_entry_department_id = ? AND timetable_entry_semester = ?", deptID, semester).
		Find(&entries).Error; err != nil {
		return nil, "", nil, err
	}

	names, err := svc.FacultyNameMap(tx, entries)
	if err != nil {
		return nil, "", nil, err
	}

	matrix := svc.BuildMatrix(entries, names, constants.WeekDays)
	return &dept, semester, &matrix, nil
}

// cellText meratakan isi satu sel jadi teks CSV, meniru format export lama:
// "Subject (Lab)" + daftar pengajar, atau "Subject - Faculty".
func cellText(cells []svc.GridCell) string {
	if len(cells) == 0 {
		return ""
	}
	parts := make([]string, 0, len(cells))
	for _, cell := range cells {
		if cell.IsLab {
			parts = append(parts, fmt.Sprintf("%s (Lab): %s", cell.Subject, strings.Join(cell.Faculties, ", ")))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s - %s", cell.Subject, cell.Faculty))
	}
	return strings.Join(parts, " | ")
}
