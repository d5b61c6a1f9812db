package dao

import (
	"errors"
	"fmt"

	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func isUniqueViolation(err error) bool {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code == "23505"
	}
	return false
}

// DBErrorToApi translates gorm/postgres errors into DaoErrors the handler
// layer can map to http codes. Unique violations name the claimed field via
// the violated constraint.
func DBErrorToApi(e error, resource string, uuid *string) *ce.DaoError {
	if e == nil {
		return nil
	}

	var pgError *pgconn.PgError
	if errors.As(e, &pgError) {
		if pgError.Code == "23505" {
			var dupKeyName string
			switch pgError.ConstraintName {
			case "businesses_unique_subdomain":
				dupKeyName = "subdomain"
			case "businesses_unique_custom_domain":
				dupKeyName = "custom domain"
			case "discount_codes_unique_business_code":
				dupKeyName = "code"
			default:
				dupKeyName = "value"
			}
			return &ce.DaoError{AlreadyExists: true, Message: resource + " with this " + dupKeyName + " already exists"}
		}
		if pgError.Code == "22021" {
			return &ce.DaoError{BadValidation: true, Message: "Request parameters contain invalid syntax"}
		}
	}

	var dbError models.Error
	if errors.As(e, &dbError) {
		return &ce.DaoError{BadValidation: dbError.Validation, Message: dbError.Message}
	}

	daoErr := ce.DaoError{}
	if errors.Is(e, gorm.ErrRecordNotFound) {
		msg := resource + " not found"
		if uuid != nil {
			msg = fmt.Sprintf("%s with UUID %s not found", resource, *uuid)
		}
		daoErr = ce.DaoError{
			Message:  msg,
			NotFound: true,
		}
	} else {
		daoErr = ce.DaoError{
			Message: e.Error(),
		}
	}

	daoErr.Wrap(e)
	return &daoErr
}
