// Package dberr maps gorm errors onto the errs taxonomy so repositories
// report store failures the same way.
package dberr

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate turns a gorm error for the given collection and key into a
// domain error. Errors it does not recognise are returned unchanged.
func Translate(err error, collection, key string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(collection, key)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewDuplicateKeyErrorWithCause(collection, key, err)
	default:
		return err
	}
}

// EscapeLike escapes the LIKE wildcards in s so it matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
