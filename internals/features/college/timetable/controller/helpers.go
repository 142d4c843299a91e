// file: internals/features/college/timetable/controller/helpers.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	svc "campusschedule_backend/internals/features/college/timetable/service"
	helper "campusschedule_backend/internals/helpers"
)

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation (unique index slot+faculty)
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Baris duplikat untuk slot+faculty yang sama (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// writeEngineError memetakan taksonomi error engine ke response HTTP:
// FieldError → 422, DuplicateSlotError/ConflictError → 409, *NotFound → 404,
// sisanya lewat mapPGError.
func writeEngineError(c *fiber.Ctx, err error) error {
	var ferr *svc.FieldError
	if errors.As(err, &ferr) {
		return helper.JsonValidationError(c, map[string][]string{
			ferr.Field: {ferr.Message},
		})
	}

	var dup *svc.DuplicateSlotError
	if errors.As(err, &dup) {
		return helper.JsonError(c, http.StatusConflict, dup.Error())
	}

	var conflict *svc.ConflictError
	if errors.As(err, &conflict) {
		return helper.JsonError(c, http.StatusConflict, conflict.Error())
	}

	switch {
	case errors.Is(err, svc.ErrDepartmentNotFound),
		errors.Is(err, svc.ErrFacultyNotFound),
		errors.Is(err, svc.ErrEntryNotFound),
		errors.Is(err, svc.ErrHistoryNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrNothingToArchive):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}
