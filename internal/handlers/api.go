package handlers

import (
	"net/http"

	"git.uuxo.net/uuxo/mime-resolver/internal/metrics"
	"git.uuxo.net/uuxo/mime-resolver/internal/mimeutil"
)

// API exposes the resolver core over a JSON query API.
type API struct {
	resolver *mimeutil.Resolver
}

// NewAPI creates the resolution API around a resolver.
func NewAPI(r *mimeutil.Resolver) *API {
	return &API{resolver: r}
}

// Register attaches all API routes to mux.
func (a *API) Register(mux *http.ServeMux, corsOrigins string) {
	mux.HandleFunc("/api/v1/resolve", CORSWrapper(corsOrigins, a.Resolve))
	mux.HandleFunc("/api/v1/extensions", CORSWrapper(corsOrigins, a.Extensions))
	mux.HandleFunc("/api/v1/match", CORSWrapper(corsOrigins, a.Match))
	mux.HandleFunc("/api/v1/parse", CORSWrapper(corsOrigins, a.Parse))
	mux.HandleFunc("/api/v1/probe", CORSWrapper(corsOrigins, a.Probe))
	mux.HandleFunc("/health", HealthHandler())
}

func countRequest(r *http.Request) {
	metrics.RequestsTotal.WithLabelValues(r.Method, r.URL.Path).Inc()
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// Resolve maps a file extension to a content type. The well_known parameter
// skips the platform tier for a platform-independent answer.
func (a *API) Resolve(w http.ResponseWriter, r *http.Request) {
	countRequest(r)
	if !requireGet(w, r) {
		return
	}

	ext := r.URL.Query().Get("ext")
	if ext == "" {
		WriteJSONError(w, http.StatusBadRequest, "missing ext parameter")
		return
	}

	wellKnown := r.URL.Query().Get("well_known") == "1" || r.URL.Query().Get("well_known") == "true"

	var (
		contentType string
		found       bool
	)
	if wellKnown {
		contentType, found = a.resolver.WellKnownTypeByExtension(ext)
		countResolution(found, "well_known")
	} else {
		contentType, found = a.resolver.TypeByExtension(ext)
		countResolution(found, "full")
	}

	if !found {
		WriteJSONError(w, http.StatusNotFound, "no mapping for extension")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]string{
		"extension":    ext,
		"content_type": contentType,
	})
}

func countResolution(found bool, mode string) {
	if found {
		metrics.ResolutionsTotal.WithLabelValues(mode).Inc()
	} else {
		metrics.ResolutionMissesTotal.Inc()
	}
}

// Extensions enumerates the extensions for a content type or top-level
// wildcard. The universal wildcards yield an empty list, not an error.
func (a *API) Extensions(w http.ResponseWriter, r *http.Request) {
	countRequest(r)
	if !requireGet(w, r) {
		return
	}

	contentType := r.URL.Query().Get("type")
	if contentType == "" {
		WriteJSONError(w, http.StatusBadRequest, "missing type parameter")
		return
	}

	metrics.ExtensionLookupsTotal.Inc()

	extensions := a.resolver.ExtensionsForType(contentType)
	if extensions == nil {
		extensions = []string{}
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"content_type": contentType,
		"extensions":   extensions,
	})
}

// Match tests a content type against a wildcard pattern.
func (a *API) Match(w http.ResponseWriter, r *http.Request) {
	countRequest(r)
	if !requireGet(w, r) {
		return
	}

	pattern := r.URL.Query().Get("pattern")
	contentType := r.URL.Query().Get("type")
	if pattern == "" || contentType == "" {
		WriteJSONError(w, http.StatusBadRequest, "missing pattern or type parameter")
		return
	}

	match := mimeutil.MatchesType(pattern, contentType)
	if match {
		metrics.MatchesTotal.WithLabelValues("match").Inc()
	} else {
		metrics.MatchesTotal.WithLabelValues("no_match").Inc()
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"pattern": pattern,
		"type":    contentType,
		"match":   match,
	})
}

// Parse splits a bare type string into its components and reports whether the
// top-level type is registered.
func (a *API) Parse(w http.ResponseWriter, r *http.Request) {
	countRequest(r)
	if !requireGet(w, r) {
		return
	}

	typeString := r.URL.Query().Get("type")
	if typeString == "" {
		WriteJSONError(w, http.StatusBadRequest, "missing type parameter")
		return
	}

	topLevel, subtype, ok := mimeutil.ParseTypeWithoutParameter(typeString)
	if !ok {
		metrics.ParseErrorsTotal.Inc()
		WriteJSONError(w, http.StatusBadRequest, "malformed type string")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"top_level":       topLevel,
		"subtype":         subtype,
		"valid_top_level": mimeutil.IsValidTopLevelType(topLevel),
	})
}

// Probe resolves a file name through its extension.
func (a *API) Probe(w http.ResponseWriter, r *http.Request) {
	countRequest(r)
	if !requireGet(w, r) {
		return
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		WriteJSONError(w, http.StatusBadRequest, "missing filename parameter")
		return
	}

	contentType, found := a.resolver.TypeByFile(filename)
	if !found {
		metrics.ResolutionMissesTotal.Inc()
		WriteJSONError(w, http.StatusNotFound, "no mapping for file")
		return
	}
	metrics.ResolutionsTotal.WithLabelValues("full").Inc()

	WriteJSONResponse(w, http.StatusOK, map[string]string{
		"filename":     filename,
		"content_type": contentType,
	})
}
