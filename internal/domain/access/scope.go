// Package access define el alcance de lectura/escritura de una petición.
// Es una capacidad cerrada de dos variantes: Admin ve todo, Owner solo ve lo
// propio. Se resuelve una vez por petición y se pasa explícita; las
// comparaciones de rol por string viven únicamente en el resolutor.
package access

// Scope alcance efectivo de un llamador ya resuelto.
type Scope struct {
	admin   bool
	ownerID string
}

// Admin alcance sin filtro: ve todos los registros de cualquier colección.
func Admin() Scope {
	return Scope{admin: true}
}

// Owner alcance limitado a los registros cuyo ownerId sea id.
func Owner(id string) Scope {
	return Scope{ownerID: id}
}

// Nobody alcance vacío: sin identidad no se lee nada.
func Nobody() Scope {
	return Scope{}
}

// IsAdmin indica si el alcance es administrador.
func (s Scope) IsAdmin() bool { return s.admin }

// OwnerID identidad del dueño; vacío para Admin y Nobody.
func (s Scope) OwnerID() string { return s.ownerID }

// Empty indica que no hay identidad ni privilegio: toda lectura devuelve vacío.
func (s Scope) Empty() bool { return !s.admin && s.ownerID == "" }

// CanAccess decide si el alcance puede tocar un registro con ese ownerId.
func (s Scope) CanAccess(ownerID string) bool {
	if s.admin {
		return true
	}
	return s.ownerID != "" && s.ownerID == ownerID
}
