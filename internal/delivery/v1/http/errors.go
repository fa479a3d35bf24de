package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog/pkg/logger"
)

// respondError логирует ошибку с уровнем, зависящим от статуса, и пишет ответ.
func respondError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	resp := ToHTTPResponse(err)
	l := log.With("request_id", RequestIDFromCtx(r.Context()))

	if resp.Code >= http.StatusInternalServerError {
		l.Errorf(err, "%s %s failed", r.Method, r.URL.Path)
	} else {
		l.Warnf("%d %s: %v", resp.Code, resp.Message, err)
	}

	WriteError(w, err)
}
