package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/matzehuels/imposer/pkg/buildinfo"
	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
	"github.com/matzehuels/imposer/pkg/pipeline"
	"github.com/matzehuels/imposer/pkg/plan"
)

// contentTypes maps output formats to response media types.
var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatMap:  "image/svg+xml",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

type schemeInfo struct {
	Name          string `json:"name"`
	Family        string `json:"family"`
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	PagesPerGroup int    `json:"pages_per_group,omitempty"`
	Rotates       bool   `json:"rotates"`
	Description   string `json:"description"`
}

func (s *Server) handleSchemes(w http.ResponseWriter, r *http.Request) {
	schemes := impose.Schemes()
	out := make([]schemeInfo, len(schemes))
	for i, sc := range schemes {
		out[i] = schemeInfo{
			Name:          sc.Name,
			Family:        string(sc.Family),
			Rows:          sc.Rows,
			Cols:          sc.Cols,
			PagesPerGroup: sc.Unit,
			Rotates:       sc.Rotates,
			Description:   sc.Description,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req impose.Request
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, hit, err := s.runner.PlanWithCacheInfo(r.Context(), req, pipeline.Options{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := plan.Marshal(p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheHeader(hit))
	writeBytes(w, contentTypes[pipeline.FormatJSON], data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, cleanup, err := s.renderOptions(w, r)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if f := r.URL.Query().Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	if len(opts.Formats) > 1 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "render returns one format per request, got %d", len(opts.Formats)))
		return
	}
	format := pipeline.DefaultFormat
	if len(opts.Formats) == 1 {
		format = opts.Formats[0]
	}
	opts.Formats = []string{format}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheHeader(res.CacheInfo.RenderHit))
	w.Header().Set("X-Plan-Hash", res.PlanHash)
	writeBytes(w, contentTypes[format], res.Artifacts[format])
}

// renderOptions reads a JSON body, or a multipart form whose "document"
// file is spooled to a temporary PDF. cleanup removes that file.
func (s *Server) renderOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, func(), error) {
	var opts pipeline.Options
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return opts, nil, s.decode(w, r, &opts)
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return opts, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse upload")
	}
	if req := r.FormValue("request"); req != "" {
		dec := json.NewDecoder(strings.NewReader(req))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return opts, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request field")
		}
	}

	file, _, err := r.FormFile("document")
	if err != nil {
		return opts, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "missing document")
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "imposer-upload-*.pdf")
	if err != nil {
		return opts, nil, err
	}
	cleanup := func() { _ = os.Remove(tmp.Name()) }
	_, err = io.Copy(tmp, file)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return opts, cleanup, err
	}
	opts.Input = tmp.Name()
	return opts, cleanup, nil
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxUpload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	return nil
}

func cacheHeader(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
