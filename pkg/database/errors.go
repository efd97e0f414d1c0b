package database

import (
	"strings"

	"github.com/lib/pq"

	"github.com/insideimaging/insideimaging-backend/pkg/errors"
)

// WrapError maps a query error to an AppError where possible and returns
// it unchanged otherwise. Repositories return this so constraint
// violations surface with the right HTTP status.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if appErr := MapPQError(err); appErr != nil {
		return appErr
	}
	return err
}

// MapPQError converts a PostgreSQL error to an AppError with meaningful messages.
// Returns nil if the error is not a pq.Error.
func MapPQError(err error) *errors.AppError {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return nil
	}

	switch pqErr.Code {
	// Check constraint violation (23514)
	case "23514":
		return mapCheckConstraint(pqErr)

	// Unique constraint violation (23505)
	case "23505":
		return errors.Conflict(formatConstraintMessage(pqErr))

	// Foreign key violation (23503)
	case "23503":
		return errors.BadRequest("referenced record does not exist")

	// Not null violation (23502)
	case "23502":
		col := pqErr.Column
		if col == "" {
			col = "required field"
		}
		return errors.Validation(map[string]string{
			col: "must not be empty",
		})

	default:
		return nil
	}
}

// mapCheckConstraint maps specific CHECK constraint names to user-friendly messages.
func mapCheckConstraint(pqErr *pq.Error) *errors.AppError {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "rating_range"):
		return errors.Validation(map[string]string{
			"rating": "must be between 1 and 5",
		})

	case strings.Contains(constraint, "patient_age_valid"):
		return errors.Validation(map[string]string{
			"patient_age": "must be between 0 and 130",
		})

	case strings.Contains(constraint, "patient_sex_valid"):
		return errors.Validation(map[string]string{
			"patient_sex": "must be one of: male, female",
		})

	case strings.Contains(constraint, "status_valid"):
		return errors.Validation(map[string]string{
			"status": "must be one of: processed, rejected",
		})

	default:
		return errors.BadRequest("data validation failed: " + constraint)
	}
}

// formatConstraintMessage creates a user-friendly message for unique constraint violations.
func formatConstraintMessage(pqErr *pq.Error) string {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "username"):
		return "a user with this username already exists"
	case strings.Contains(constraint, "job_id"):
		return "a report event with this job id already exists"
	default:
		return "a record with these values already exists"
	}
}
