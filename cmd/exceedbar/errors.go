package main

import "fmt"

// UnknownBackendError is returned for a -backend value that names no
// renderer.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown backend %q (want raster, fogleman or vector)", e.Name)
}
