//go:build !nogpu

package main

import _ "github.com/gogpu/gg/gpu" // GPU accelerator for the raster backend
