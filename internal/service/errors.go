package service

import "errors"

// Domain errors surfaced to handlers, which map them to HTTP status codes.
var (
	ErrClaveInvalida        = errors.New("clave incorrecta")
	ErrArchivoFaltante      = errors.New("no se subió archivo")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
)
