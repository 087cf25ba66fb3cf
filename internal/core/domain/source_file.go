package domain

import (
	"path"
	"strings"
)

// Arch is the target architecture tag reported by the host build tool
// (e.g. "web.browser", "web.cordova", "os.linux.x86_64").
type Arch string

const (
	// ArchBrowser is the default client architecture.
	ArchBrowser Arch = "web.browser"
	// ArchServer is the default server architecture.
	ArchServer Arch = "os"

	clientArchPrefix = "web"
)

// IsClient reports whether the architecture targets a browser/client runtime.
func (a Arch) IsClient() bool {
	return strings.HasPrefix(string(a), clientArchPrefix)
}

// Role returns "client" or "server".
func (a Arch) Role() string {
	if a.IsClient() {
		return "client"
	}
	return "server"
}

// SourceFile is a single compile request as supplied by the host build tool.
// It is treated as immutable once constructed.
type SourceFile struct {
	// Path is the project-relative path, always slash separated.
	Path string
	// Package is the owning package name. Empty means the application root.
	Package string
	// Arch is the architecture the file is compiled for.
	Arch Arch
	// SourceHash is the content hash computed by the host.
	SourceHash string
	// DeclaredExports lists the symbols the host declared for the file.
	DeclaredExports []string
	// Contents is the source text.
	Contents []byte
	// Dir is the absolute directory containing the file. It anchors the
	// upward manifest search; empty disables manifest lookup.
	Dir string
	// HMRAvailable reports whether the file supports lazy recompilation.
	HMRAvailable bool
}

// PackageName returns the owning package or "app" for the application root.
func (f *SourceFile) PackageName() string {
	if f.Package == "" {
		return "app"
	}
	return f.Package
}

// Ext returns the file extension without the leading dot.
func (f *SourceFile) Ext() string {
	return strings.TrimPrefix(path.Ext(f.Path), ".")
}

// IsDeclaration reports whether the file is an ambient type declaration file.
func (f *SourceFile) IsDeclaration() bool {
	return strings.HasSuffix(f.Path, ".d.ts")
}

// WithContents returns a copy of the file with its contents and path replaced.
// The copy keeps every other identity field of the original.
func (f *SourceFile) WithContents(filePath string, contents []byte) *SourceFile {
	clone := *f
	clone.Path = filePath
	clone.Contents = contents
	return &clone
}
