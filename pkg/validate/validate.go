// Package validate valida campos requeridos en escrituras de entidades.
// Junta todos los faltantes en un solo error en vez de cortar en el primero.
package validate

import (
	"fmt"
	"strings"
)

// Error reporta todos los campos requeridos que faltan en una escritura.
type Error struct {
	Missing []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("campos requeridos faltantes: %s", strings.Join(e.Missing, ", "))
}

// Required verifica que cada campo de required exista en fields con un valor
// presente. Cuentan como faltantes: clave ausente, nil, string vacío o solo
// espacios. El cero numérico es un valor válido (un precio 0 es legal).
func Required(fields map[string]any, required ...string) error {
	var missing []string
	for _, name := range required {
		v, ok := fields[name]
		if !ok || v == nil {
			missing = append(missing, name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &Error{Missing: missing}
	}
	return nil
}
