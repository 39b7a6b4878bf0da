package web

import "embed"

// Templates embute os templates HTML.
//
//go:embed templates/**/*.html
var Templates embed.FS

// Static embute os arquivos estáticos.
//
//go:embed static/**/*
var Static embed.FS
