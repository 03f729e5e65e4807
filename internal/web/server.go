// Package web serves the SplitNeat page: the friend list, the add-friend
// panel and the split-bill form, all rendered on the server.
//
// Every action is a form post. A successful action redirects back to the
// page; a rejected one re-renders the page with the submitted input so the
// user can fix it. No error message is shown for a rejection.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mmynk/splitneat/internal/forms"
	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/metrics"
	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the page and handles its form posts.
type Server struct {
	ledger  *ledger.Ledger
	metrics *metrics.Metrics
	tmpl    *template.Template
}

// page is the data the template renders.
type page struct {
	Rows           []view.FriendRow
	Summary        view.Summary
	ShowAddFriend  bool
	AddFriendLabel string
	AddFriend      forms.AddFriend
	Selected       *models.Friend
	Split          forms.SplitBill
	SplitLabels    view.SplitBillLabels
}

// New parses the templates. m may be nil.
func New(l *ledger.Ledger, m *metrics.Metrics) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{ledger: l, metrics: m, tmpl: tmpl}, nil
}

// Register mounts the page routes on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /friends", s.handleAddFriend)
	mux.HandleFunc("POST /friends/panel", s.handleTogglePanel)
	mux.HandleFunc("POST /friends/{id}/select", s.handleSelect)
	mux.HandleFunc("POST /split", s.handleSplit)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, forms.AddFriend{}, forms.NewSplitBill())
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	form := forms.AddFriend{
		Name:  r.PostFormValue("name"),
		Image: r.PostFormValue("image"),
	}

	_, err := form.Submit(r.Context(), s.ledger)
	if errors.Is(err, forms.ErrRejected) {
		s.metrics.Rejected(metrics.FormAddFriend)
		s.render(w, r, http.StatusUnprocessableEntity, form, forms.NewSplitBill())
		return
	}
	if err != nil {
		s.fail(w, "AddFriend failed", err)
		return
	}

	redirectHome(w, r)
}

func (s *Server) handleTogglePanel(w http.ResponseWriter, r *http.Request) {
	s.ledger.ToggleAddFriendPanel()
	redirectHome(w, r)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	err = s.ledger.SelectFriend(r.Context(), id)
	if errors.Is(err, ledger.ErrFriendNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.fail(w, "SelectFriend failed", err)
		return
	}

	redirectHome(w, r)
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	form := forms.SplitBill{
		Bill:       r.PostFormValue("bill"),
		PaidByUser: r.PostFormValue("paid_by_user"),
		Payer:      models.Payer(r.PostFormValue("payer")),
	}

	_, err := form.Submit(r.Context(), s.ledger)
	switch {
	case errors.Is(err, forms.ErrRejected):
		s.metrics.Rejected(metrics.FormSplitBill)
		s.render(w, r, http.StatusUnprocessableEntity, forms.AddFriend{}, form)
	case errors.Is(err, ledger.ErrNoSelection):
		// The form is only shown with a selection; a stale page lands here.
		redirectHome(w, r)
	case err != nil:
		s.fail(w, "SplitBill failed", err)
	default:
		redirectHome(w, r)
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, add forms.AddFriend, split forms.SplitBill) {
	snap, err := s.ledger.Snapshot(r.Context())
	if err != nil {
		s.fail(w, "Snapshot failed", err)
		return
	}

	data := page{
		Rows:           view.FriendList(snap),
		Summary:        view.SummaryOf(snap),
		ShowAddFriend:  snap.ShowAddFriend,
		AddFriendLabel: view.AddFriendButtonLabel(snap.ShowAddFriend),
		AddFriend:      add,
		Selected:       snap.Selected,
		Split:          split,
	}
	if snap.Selected != nil {
		data.SplitLabels = view.SplitBillFor(*snap.Selected)
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		s.fail(w, "Template rendering failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
