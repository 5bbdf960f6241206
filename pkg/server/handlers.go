package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/nearbyfyi/ner/internal"
	"github.com/nearbyfyi/ner/pkg/extractors"
	"github.com/nearbyfyi/ner/pkg/formatters"
	"github.com/nearbyfyi/ner/pkg/models"
	"github.com/nearbyfyi/ner/pkg/server/handlertools"
)

var log = internal.GetLogger()

// ClassifyTextHandler returns a handler for POST requests to /classify. The
// request body is the text to classify. Entities are returned as JSON when
// the client accepts application/json and as CSV text otherwise.
func ClassifyTextHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formatter := formatters.ForAccept(r.Header.Get("Accept"))

		text, err := handlertools.ReadText(r)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		classify(w, r, appState, formatter, text)
	}
}

// ClassifyQueryHandler returns a handler for GET requests to
// /classify?text=... Entities are always returned as JSON.
func ClassifyQueryHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classify(w, r, appState, formatters.JSON, r.URL.Query().Get("text"))
	}
}

// classify runs text through the default classifier and renders the result.
func classify(
	w http.ResponseWriter,
	r *http.Request,
	appState *models.AppState,
	formatter formatters.Formatter,
	text string,
) {
	group, err := extractors.ExtractEntities(r.Context(), appState.Classifiers, "", text)
	if err != nil {
		log.Warnf("classify request %s failed: %v", middleware.GetReqID(r.Context()), err)
		handlertools.RenderError(w, err, http.StatusInternalServerError)
		return
	}

	handlertools.Render(w, formatter, formatter.Format(group))
}
