package ports

import "context"

// FeaturedCache cache de lectura del listado completo de items, guardado como
// snapshot serializado bajo una única key con TTL fijo. Cualquier escritura
// sobre items lo invalida por completo (borrar la key), sin granularidad por
// item.
type FeaturedCache interface {
	// Get devuelve (snapshot, true) en hit; (nil, false) en miss.
	Get(ctx context.Context) ([]byte, bool, error)
	Set(ctx context.Context, snapshot []byte) error
	Invalidate(ctx context.Context) error
}
