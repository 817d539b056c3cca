package services

import (
	"errors"
	"time"

	apperrors "accrue/internal/errors"
	"accrue/internal/validator"

	"github.com/mattn/go-sqlite3"
)

// storeErr maps a raw store failure to an AppError. A locked database is
// surfaced as store-unavailable so callers treat it as fatal to the
// operation instead of retrying.
func storeErr(err error) *apperrors.AppError {
	var se sqlite3.Error
	if errors.As(err, &se) && (se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked) {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return apperrors.Wrap(apperrors.ErrStoreFailure, err)
}

// validateParams runs struct validation and converts failures into
// invalid-input errors.
func validateParams(params interface{}) error {
	if err := validator.Struct(params); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// civilDate normalizes a timestamp to UTC midnight of its calendar date, so
// period bucketing by year-month is exact regardless of the caller's
// timezone.
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// monthKey formats a timestamp's calendar month as YYYY-MM, the period key
// used by the report aggregator.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
