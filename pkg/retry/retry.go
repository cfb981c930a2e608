// Package retry envuelve operaciones remotas falibles con reintentos y
// backoff exponencial acotado. La clasificación de errores es una estrategia
// inyectable (ShouldRetry); la capa de almacenamiento compone la suya propia.
package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Valores por defecto del ejecutor.
const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 1 * time.Second
	DefaultMaxDelay     = 10 * time.Second
)

// Options configura una ejecución con reintentos.
type Options struct {
	MaxRetries   int           // intentos totales; 1 = un solo intento sin espera
	InitialDelay time.Duration // espera antes del segundo intento
	MaxDelay     time.Duration // tope para la espera exponencial
	// ShouldRetry decide si un fallo es transitorio. Nil usa IsTransient.
	ShouldRetry func(error) bool
	// OnAttempt se invoca tras cada intento fallido que va a reintentarse.
	// Nil reporta con zerolog a nivel warn.
	OnAttempt func(attempt int, err error)
}

func (o Options) withDefaults() Options {
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = DefaultInitialDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = DefaultMaxDelay
	}
	if o.ShouldRetry == nil {
		o.ShouldRetry = IsTransient
	}
	return o
}

// Do ejecuta op hasta Options.MaxRetries veces con backoff exponencial
// min(initial·2^(intento-1), max). Un fallo no transitorio, o el último
// intento, corta de inmediato envolviendo la causa con el número de intentos
// y la etiqueta. Garantiza devolver un resultado o un error, nunca ninguno.
func Do[T any](ctx context.Context, label string, op func(context.Context) (T, error), opts Options) (T, error) {
	var zero T
	o := opts.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= o.MaxRetries; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !o.ShouldRetry(err) {
			return zero, fmt.Errorf("%s: fallo no recuperable en intento %d: %w", label, attempt, err)
		}
		if attempt == o.MaxRetries {
			break
		}

		if o.OnAttempt != nil {
			o.OnAttempt(attempt, err)
		} else {
			log.Warn().Err(err).Str("op", label).Int("attempt", attempt).Msg("intento fallido, reintentando")
		}

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("%s: cancelado tras %d intentos: %w", label, attempt, ctx.Err())
		case <-time.After(backoff(attempt, o.InitialDelay, o.MaxDelay)):
		}
	}

	return zero, fmt.Errorf("%s: fallo tras %d intentos: %w", label, o.MaxRetries, lastErr)
}

// backoff espera para el intento dado: initial·2^(attempt-1) con tope max.
func backoff(attempt int, initial, max time.Duration) time.Duration {
	d := initial
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}

// IsTransient predicado por defecto: reconoce señales de indisponibilidad,
// deadline vencido y fallos de red como transitorios.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"unavailable",
		"deadline-exceeded",
		"deadline exceeded",
		"timeout",
		"timed out",
		"connection refused",
		"connection reset",
		"network",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
