package assets

import "embed"

//go:embed subformat.example.yaml subformat.example.toml
var Embedded embed.FS

// Nom des assets de config par défaut (chemins DANS Embedded)
const (
	DefaultConfigAsset     = "subformat.example.yaml"
	DefaultTOMLConfigAsset = "subformat.example.toml"
)
