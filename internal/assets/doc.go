// Package assets provides SVG page templates for marker sheets.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - template sets compiled into the binary
//	    ├── FilesystemLoader  - template sets from a directory on disk
//	    └── Resolver          - custom directory first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}/
//	        ├── single.svg.tmpl   # one marker, portrait page
//	        └── double.svg.tmpl   # two markers, landscape page
//
// # Security
//
// Template set names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
