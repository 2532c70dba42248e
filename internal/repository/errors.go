package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"gorm.io/gorm"

	apperrors "sedbms/internal/errors"
)

// translate converts GORM errors into the application error kinds. what
// names the record for the message, e.g. "student 1CR21CS001".
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	case apperrors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicateKey, what)
	case apperrors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %s", apperrors.ErrReferentialViolation, what)
	case apperrors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %s", apperrors.ErrConstraintViolation, what)
	}
	return translatePQ(err, what)
}

// Postgres SQLSTATE codes. The postgres dialector runs on a lib/pq connection,
// whose errors gorm's translator does not recognise.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func translatePQ(err error, what string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case pqUniqueViolation:
		return fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicateKey, what)
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrReferentialViolation, what)
	case pqCheckViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrConstraintViolation, what)
	}
	return err
}

// invalid wraps a validation failure as a constraint violation.
func invalid(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", apperrors.ErrConstraintViolation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s fails %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s fails %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", apperrors.ErrConstraintViolation, strings.Join(msgs, "; "))
}

func exists(tx *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
