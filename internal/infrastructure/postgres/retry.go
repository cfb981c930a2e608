package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/retry"
)

// ShouldRetry predicado de reintentos especializado para el almacén: además de
// las señales transitorias genéricas, trata agotamiento de recursos, abortos
// por serialización y errores internos como recuperables. Un fallo de
// permisos nunca se reintenta: repetir no cambia una decisión de autorización.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUnauthorized) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501": // insufficient_privilege
			return false
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return true
		case "57P03": // cannot_connect_now
			return true
		}
		switch {
		case strings.HasPrefix(pgErr.Code, "53"): // insufficient_resources
			return true
		case strings.HasPrefix(pgErr.Code, "08"): // connection_exception
			return true
		case strings.HasPrefix(pgErr.Code, "XX"): // internal_error
			return true
		}
		return false
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "permission denied") || strings.Contains(s, "permission-denied") {
		return false
	}
	if strings.Contains(s, "resource-exhausted") || strings.Contains(s, "aborted") ||
		strings.Contains(s, "internal") {
		return true
	}
	return retry.IsTransient(err)
}
