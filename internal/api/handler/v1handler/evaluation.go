package v1handler

import (
	"net/http"
	"seoeval/internal/evaluator"
	"seoeval/pkg/logger"
	"seoeval/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// CreateEvaluation queues the evaluation of a scan and answers 202. The
// enqueued field is false when the same scan is already waiting or running.
func (h *Handler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var rawDomain, dateOfScan string
	err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "domain":
			rawDomain, err = decodeString(d, key)
		case "dateOfScan":
			dateOfScan, err = decodeString(d, key)
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	domainName, dateOfScan, err := scanKey(rawDomain, dateOfScan)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	ctx := logger.WithFields(r.Context(), zap.String("userId", string(GetUserIDFromContext(r.Context()))))
	enqueued, err := h.deps.Evaluator.Enqueue(ctx, domainName, dateOfScan)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	e.Obj(func(e *jx.Encoder) {
		e.Field("domain", func(e *jx.Encoder) { e.Str(domainName) })
		e.Field("dateOfScan", func(e *jx.Encoder) { e.Str(dateOfScan) })
		e.Field("enqueued", func(e *jx.Encoder) { e.Bool(enqueued) })
	})
	writeJSON(w, http.StatusAccepted, e)
}

// ListIssues answers with the stored issue bundles of a scan.
func (h *Handler) ListIssues(w http.ResponseWriter, r *http.Request) {
	domainName, dateOfScan, err := scanKey(r.PathValue("domain"), r.PathValue("dateOfScan"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	items, err := h.deps.Evaluator.Issues(r.Context(), domainName, dateOfScan)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeIssues(items))
}

func scanKey(rawDomain, dateOfScan string) (string, string, error) {
	domainName, err := evaluator.NormalizeDomain(rawDomain)
	if err != nil {
		return "", "", err
	}
	dateOfScan = strings.TrimSpace(dateOfScan)
	if dateOfScan == "" {
		return "", "", serrors.With(serrors.ErrBadRequest, "dateOfScan is required")
	}

	return domainName, dateOfScan, nil
}
