package ui

import (
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"neurometrics/adapters/excel"
	"neurometrics/domain/compare"
	"neurometrics/internal/report"
	"neurometrics/internal/sweep"
	"neurometrics/models"
)

type indexView struct {
	Error string
}

type resultView struct {
	GroupA     string
	GroupB     string
	Result     compare.Result
	ReportHTML template.HTML
}

type sweepView struct {
	Source     string
	Pairs      []sweep.PairResult
	ReportHTML template.HTML
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.render(w, "index.html", indexView{})
}

// handleCompare runs the comparator on two named columns of the uploaded file.
func (a *App) handleCompare(w http.ResponseWriter, r *http.Request) {
	ds, _, ok := a.readUpload(w, r)
	if !ok {
		return
	}

	colA := r.FormValue("column_a")
	colB := r.FormValue("column_b")
	groupA, okA := ds.Column(colA)
	groupB, okB := ds.Column(colB)
	if !okA || !okB {
		a.renderError(w, "Both column names must exist in the uploaded file.")
		return
	}

	result, err := compare.Compare(groupA, groupB)
	if err != nil {
		// Fatal comparator failures are shown verbatim, per the output
		// contract: no fallback verdict is substituted.
		a.renderError(w, err.Error())
		return
	}

	a.recordComparison(r, colA, colB, len(groupA), len(groupB), result)

	md := report.ComparisonMarkdown(colA, colB, len(groupA), len(groupB), result)
	a.render(w, "result.html", resultView{
		GroupA:     colA,
		GroupB:     colB,
		Result:     result,
		ReportHTML: report.RenderHTML(md),
	})
}

// handleSweep compares every numeric column pair of the uploaded file.
func (a *App) handleSweep(w http.ResponseWriter, r *http.Request) {
	ds, name, ok := a.readUpload(w, r)
	if !ok {
		return
	}

	results := sweep.Run(r.Context(), ds, a.cfg.Sweep.Concurrency)
	md := report.SweepMarkdown(name, results)
	a.render(w, "sweep.html", sweepView{
		Source:     name,
		Pairs:      results,
		ReportHTML: report.RenderHTML(md),
	})
}

// readUpload parses the multipart form and loads the uploaded data file into
// a dataset. Renders the error page itself when something is wrong.
func (a *App) readUpload(w http.ResponseWriter, r *http.Request) (*excel.Dataset, string, bool) {
	if err := r.ParseMultipartForm(a.cfg.Data.MaxUploadSize); err != nil {
		a.renderError(w, "Upload too large or malformed: "+err.Error())
		return nil, "", false
	}

	file, header, err := r.FormFile("data_file")
	if err != nil {
		a.renderError(w, "Please upload a data file (.xlsx or .csv).")
		return nil, "", false
	}
	defer file.Close()

	path, err := saveTemp(file, header.Filename)
	if err != nil {
		a.logger.Error("failed to buffer upload: %v", err)
		a.renderError(w, "Failed to read the uploaded file.")
		return nil, "", false
	}
	defer os.Remove(path)

	ds, err := excel.NewDataReader(path).ReadData()
	if err != nil {
		a.renderError(w, "Failed to parse the uploaded file: "+err.Error())
		return nil, "", false
	}
	return ds, header.Filename, true
}

// saveTemp buffers the upload on disk, keeping the original extension so the
// reader can pick the right format.
func saveTemp(file multipart.File, filename string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".xlsx"
	}

	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// recordComparison writes history best-effort when configured.
func (a *App) recordComparison(r *http.Request, labelA, labelB string, sizeA, sizeB int, result compare.Result) {
	if a.repo == nil {
		return
	}
	record := models.NewComparisonRecord(labelA, labelB, sizeA, sizeB, result)
	if err := a.repo.SaveComparison(r.Context(), record); err != nil {
		a.logger.Warn("failed to record comparison %s: %v", record.ID, err)
	}
}

func (a *App) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		a.logger.Error("failed to render %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (a *App) renderError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := a.templates.ExecuteTemplate(w, "index.html", indexView{Error: message}); err != nil {
		a.logger.Error("failed to render index.html: %v", err)
	}
}
