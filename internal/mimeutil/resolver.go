package mimeutil

import (
	"path/filepath"
	"strings"
)

// maxExtensionLength bounds lookups against pathological inputs such as data
// URLs mistaken for file names.
const maxExtensionLength = 65536

// Platform is the OS-native MIME registry the resolver consults between the
// primary and secondary tables. Implementations may block on filesystem or
// registry I/O and must be safe for concurrent use.
type Platform interface {
	TypeByExtension(ext string) (string, bool)
	ExtensionsForType(contentType string) []string
}

// Resolver answers extension-to-type and type-to-extensions queries through
// the layered fallback policy. A nil platform simply skips the platform tier.
type Resolver struct {
	platform Platform
}

// NewResolver returns a Resolver backed by the given platform registry.
func NewResolver(p Platform) *Resolver {
	return &Resolver{platform: p}
}

func findType(mappings []mapping, ext string) (string, bool) {
	for _, m := range mappings {
		for _, e := range m.extensions {
			if strings.EqualFold(e, ext) {
				return m.contentType, true
			}
		}
	}
	return "", false
}

// TypeByExtension resolves a bare file extension (no leading dot) to a
// content type, consulting the primary table, then the platform registry,
// then the secondary table.
func (r *Resolver) TypeByExtension(ext string) (string, bool) {
	return r.typeByExtension(ext, true)
}

// WellKnownTypeByExtension is TypeByExtension with the platform tier skipped,
// giving the same answer on every operating system.
func (r *Resolver) WellKnownTypeByExtension(ext string) (string, bool) {
	return r.typeByExtension(ext, false)
}

func (r *Resolver) typeByExtension(ext string, includePlatform bool) (string, bool) {
	if len(ext) > maxExtensionLength {
		return "", false
	}

	// Same policy as Mozilla and the major browsers: a hardcoded list that
	// cannot be overridden, then the system registry, then a second
	// hardcoded list the system is allowed to shadow.
	if ct, ok := findType(primaryMappings, ext); ok {
		return ct, true
	}

	if includePlatform && r.platform != nil {
		if ct, ok := r.platform.TypeByExtension(ext); ok {
			return ct, true
		}
	}

	return findType(secondaryMappings, ext)
}

// TypeByFile resolves the extension of a file path, platform types included.
// Paths without an extension do not resolve.
func (r *Resolver) TypeByFile(path string) (string, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	return r.TypeByExtension(ext[1:])
}

// ExtensionsForType returns every extension associated with a content type or
// a top-level wildcard such as image/*. The universal wildcards * and */*
// yield nothing. The result carries no duplicates and no particular order.
func (r *Resolver) ExtensionsForType(contentType string) []string {
	if contentType == "*/*" || contentType == "*" {
		return nil
	}

	ct := strings.ToLower(contentType)
	unique := make(map[string]struct{})

	if strings.HasSuffix(ct, "/*") {
		leading := ct[:len(ct)-1] // keep the trailing slash

		// An unknown prefix falls through to the last-declared group
		// rather than matching nothing.
		group := standardGroups[len(standardGroups)-1]
		for _, g := range standardGroups {
			if g.prefix == leading {
				group = g
				break
			}
		}

		if r.platform != nil {
			for _, st := range group.types {
				for _, e := range r.platform.ExtensionsForType(st) {
					unique[e] = struct{}{}
				}
			}
		}
		collectTableExtensions(primaryMappings, leading, unique)
		collectTableExtensions(secondaryMappings, leading, unique)
	} else {
		if r.platform != nil {
			for _, e := range r.platform.ExtensionsForType(ct) {
				unique[e] = struct{}{}
			}
		}
		// The hardcoded mappings cover extensions the system registry may
		// not have registered, like ogg.
		collectTableExtensions(primaryMappings, ct, unique)
		collectTableExtensions(secondaryMappings, ct, unique)
	}

	extensions := make([]string, 0, len(unique))
	for e := range unique {
		extensions = append(extensions, e)
	}
	return extensions
}

func collectTableExtensions(mappings []mapping, leading string, into map[string]struct{}) {
	for _, m := range mappings {
		if strings.HasPrefix(m.contentType, leading) {
			for _, e := range m.extensions {
				into[e] = struct{}{}
			}
		}
	}
}
