package prometheus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang/gddo/httputil"
)

const (
	contentTypePlainText = "text/plain"
	contentTypeJSON      = "application/json"
)

// componentStatus is one line of the health report.
type componentStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// negotiateContentType parses "Accept:" header and returns preferred content type string.
func negotiateContentType(r *http.Request) string {
	contentTypes := []string{
		contentTypePlainText,
		contentTypeJSON,
	}
	return httputil.NegotiateContentType(r, contentTypes, contentTypePlainText)
}

// writeResponse is content-type aware response writer.
func writeResponse(w http.ResponseWriter, r *http.Request, code int, report []componentStatus) error {
	switch negotiateContentType(r) {
	case contentTypeJSON:
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(code)
		return json.NewEncoder(w).Encode(report)
	default:
		w.Header().Set("Content-Type", contentTypePlainText)
		w.WriteHeader(code)
		var b strings.Builder
		for _, c := range report {
			b.WriteString(fmt.Sprintf("%s: %s\n", c.Name, c.Status))
		}
		if _, err := w.Write([]byte(b.String())); err != nil {
			return fmt.Errorf("could not write response body: %w", err)
		}
	}
	return nil
}
