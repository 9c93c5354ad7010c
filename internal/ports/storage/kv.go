package storage

import "context"

// KV es el almacenamiento clave-valor local de la plataforma
// (el equivalente al localStorage del navegador en la app original).
// Get devuelve ok=false si la clave no existe.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
