package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"isrevy/internal/domain/model"
	"isrevy/internal/domain/reconcile"
	"isrevy/internal/domain/schedule"
)

//go:embed templates/startlist.html
var templateFS embed.FS

var startListTmpl = template.Must(
	template.New("startlist.html").Funcs(template.FuncMap{
		"kindLabel": KindLabel,
		"isGroup":   func(e schedule.Entry) bool { return e.Kind == schedule.KindGroup },
		"isPause":   func(e schedule.Entry) bool { return e.Kind == schedule.KindPause },
		"isSkater":  func(e schedule.Entry) bool { return e.Kind == schedule.KindSkater },
		"music": func(p *model.Participant) string {
			if p.Asset == nil {
				return ""
			}
			return p.Asset.Filename
		},
	}).ParseFS(templateFS, "templates/startlist.html"),
)

// StartList is the data fed to the HTML template.
type StartList struct {
	Title         string
	GeneratedAt   time.Time
	Entries       []schedule.Entry
	Discrepancies []reconcile.Discrepancy
	Officials     int
}

// KindLabel renders a discrepancy kind in the operators' language.
func KindLabel(k reconcile.Kind) string {
	switch k {
	case reconcile.KindNotInExport:
		return "Påmeldt, men mangler i eksporten"
	case reconcile.KindNotRegistered:
		return "I eksporten, men ikke påmeldt"
	case reconcile.KindMissingMusic:
		return "Mangler musikk"
	default:
		return string(k)
	}
}

// RenderStartListHTML renders the start list page.
func RenderStartListHTML(w io.Writer, data StartList) error {
	if err := startListTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}
