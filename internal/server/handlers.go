package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlfmt/internal/config"
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/sqlfmt"
)

// FormatRequest is the JSON body of POST /format. Omitted options keep the
// server defaults.
type FormatRequest struct {
	SQL string `json:"sql"`
	config.Formatting
}

// FormatResponse is the JSON reply of POST /format.
type FormatResponse struct {
	SQL string `json:"sql"`
}

// DialectInfo describes one registered dialect.
type DialectInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleDialects(w http.ResponseWriter, _ *http.Request) {
	all := dialect.All()
	out := make([]DialectInfo, 0, len(all))
	for _, d := range all {
		aliases := d.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		out = append(out, DialectInfo{Name: d.Name, Aliases: aliases})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleFormat accepts either a JSON FormatRequest or raw SQL with options
// in the query string. The reply uses the same encoding as the request.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	asJSON := mediaType == "application/json"

	req := FormatRequest{Formatting: s.defaults}
	var err error
	if asJSON {
		err = decodeJSON(r.Body, &req)
	} else {
		err = decodeText(r, &req)
	}
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.fail(w, status, asJSON, err)
		return
	}

	fm, err := sqlfmt.New(req.Options(s.logger))
	if err != nil {
		s.fail(w, http.StatusBadRequest, asJSON, err)
		return
	}
	result := fm.Format(req.SQL)
	s.logger.Debug("formatted request", "language", fm.Dialect().Name, "bytes", len(req.SQL))

	if asJSON {
		writeJSON(w, http.StatusOK, FormatResponse{SQL: result})
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, result)
}

func decodeJSON(body io.Reader, req *FormatRequest) error {
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(req); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func decodeText(r *http.Request, req *FormatRequest) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	req.SQL = string(body)
	return applyQuery(r.URL.Query(), &req.Formatting)
}

// applyQuery overlays query-string options on f. Placeholder values are
// passed as repeated param=key=value entries.
func applyQuery(q url.Values, f *config.Formatting) error {
	if v := q.Get("language"); v != "" {
		f.Language = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"indent", &f.Indent},
		{"lines_between_queries", &f.LinesBetweenQueries},
		{"inline_width", &f.InlineWidth},
	}
	for _, o := range ints {
		if v := q.Get(o.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %q", o.key, v)
			}
			*o.dst = n
		}
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{"tab", &f.Tab},
		{"uppercase", &f.Uppercase},
		{"break_between_and", &f.BreakBetweenAnd},
	}
	for _, o := range bools {
		if v := q.Get(o.key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %q", o.key, v)
			}
			*o.dst = b
		}
	}
	if values := q["param"]; len(values) > 0 {
		named := make(map[string]any, len(values))
		for _, v := range values {
			key, value, _ := strings.Cut(v, "=")
			named[key] = value
		}
		f.Params = named
	}
	return nil
}

func (s *Server) fail(w http.ResponseWriter, status int, asJSON bool, err error) {
	s.logger.Debug("request failed", "status", status, "error", err)
	if asJSON {
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
