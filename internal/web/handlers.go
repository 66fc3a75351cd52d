package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/runoshun/issue-drafter/internal/usecase"
	"go.uber.org/zap"
)

// repoLink is a registered repository with its pre-filled issue form URL.
type repoLink struct {
	ID          string
	FullName    string
	URL         string
	NewIssueURL string
}

type previewView struct {
	Issue    *domain.Issue
	HTML     template.HTML
	Markdown string
	Repos    []repoLink
}

type indexView struct {
	Recent []*domain.Issue
}

type historyView struct {
	Issues []*domain.Issue
}

type settingsView struct {
	Error *errorView
	Repos []repoLink
}

type errorView struct {
	Message string
	Status  int
}

// issueJSON is the JSON shape of an issue for API clients.
type issueJSON struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Story        string    `json:"story"`
	Criteria     string    `json:"criteria"`
	Requirements string    `json:"requirements"`
	Markdown     string    `json:"markdown"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.ListIssues.Execute(r.Context(), usecase.ListIssuesInput{Limit: usecase.RecentIssuesLimit})
	if err != nil {
		s.renderErrorPage(w, err)
		return
	}
	s.render(w, http.StatusOK, "index", indexView{Recent: out.Issues})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.ListIssues.Execute(r.Context(), usecase.ListIssuesInput{})
	if err != nil {
		s.renderErrorPage(w, err)
		return
	}
	s.render(w, http.StatusOK, "history", historyView{Issues: out.Issues})
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	repos, err := s.repoLinks(r, nil)
	if err != nil {
		s.renderErrorPage(w, err)
		return
	}
	s.render(w, http.StatusOK, "settings", settingsView{Repos: repos})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.ShowIssue.Execute(r.Context(), usecase.ShowIssueInput{ID: r.PathValue("issue_id")})
	if err != nil {
		s.renderErrorPage(w, err)
		return
	}
	view, err := s.preview(r, out.Issue)
	if err != nil {
		s.renderErrorPage(w, err)
		return
	}
	s.render(w, http.StatusOK, "preview", view)
}

func (s *Server) handlePreviewMarkdown(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.ShowIssue.Execute(r.Context(), usecase.ShowIssueInput{ID: r.PathValue("issue_id")})
	if err != nil {
		s.logFailure(r, err)
		http.Error(w, userMessage(err), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte("# " + out.Issue.Title + "\n\n" + out.Issue.Markdown()))
}

// handleCreateRequest drafts an issue from the user_input form field.
// Browsers get a preview fragment; clients asking for JSON get JSON.
func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	wantJSON := acceptsJSON(r)

	out, err := s.deps.GenerateIssue.Execute(r.Context(), usecase.GenerateIssueInput{Text: r.FormValue("user_input")})
	if err != nil {
		s.logFailure(r, err)
		if wantJSON {
			s.writeJSON(w, statusFor(err), map[string]string{"status": "error", "message": userMessage(err)})
			return
		}
		s.renderErrorFragment(w, err)
		return
	}

	if wantJSON {
		s.writeJSON(w, http.StatusOK, map[string]any{"status": "success", "issue": toIssueJSON(out.Issue)})
		return
	}

	view, err := s.preview(r, out.Issue)
	if err != nil {
		s.renderErrorFragment(w, err)
		return
	}
	s.render(w, http.StatusOK, "issue_preview", view)
}

func (s *Server) handleAddRepo(w http.ResponseWriter, r *http.Request) {
	_, err := s.deps.AddRepository.Execute(r.Context(), usecase.AddRepositoryInput{
		Name:  r.FormValue("name"),
		Owner: r.FormValue("owner"),
		URL:   r.FormValue("url"),
	})
	if err != nil {
		s.logFailure(r, err)
	}
	s.renderRepoList(w, r, err)
}

func (s *Server) handleDeleteRepo(w http.ResponseWriter, r *http.Request) {
	_, err := s.deps.DeleteRepository.Execute(r.Context(), usecase.DeleteRepositoryInput{ID: r.PathValue("id")})
	if err != nil {
		s.logFailure(r, err)
	}
	s.renderRepoList(w, r, err)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// renderRepoList answers a repository mutation with the refreshed list.
// A failed mutation is shown above the list; the status stays 200 so
// htmx swaps it.
func (s *Server) renderRepoList(w http.ResponseWriter, r *http.Request, opErr error) {
	repos, err := s.repoLinks(r, nil)
	if err != nil {
		s.renderErrorFragment(w, err)
		return
	}
	view := settingsView{Repos: repos}
	if opErr != nil {
		view.Error = &errorView{Message: userMessage(opErr), Status: statusFor(opErr)}
	}
	s.render(w, http.StatusOK, "repo_list", view)
}

func (s *Server) preview(r *http.Request, issue *domain.Issue) (previewView, error) {
	md := issue.Markdown()
	html, err := s.deps.Renderer.Render(md)
	if err != nil {
		return previewView{}, err
	}
	repos, err := s.repoLinks(r, issue)
	if err != nil {
		return previewView{}, err
	}
	return previewView{Issue: issue, HTML: html, Markdown: md, Repos: repos}, nil
}

// repoLinks lists repositories. With a non-nil issue each link carries
// the pre-filled new-issue URL.
func (s *Server) repoLinks(r *http.Request, issue *domain.Issue) ([]repoLink, error) {
	out, err := s.deps.ListRepositories.Execute(r.Context(), usecase.ListRepositoriesInput{})
	if err != nil {
		return nil, err
	}
	links := make([]repoLink, 0, len(out.Repositories))
	for _, repo := range out.Repositories {
		link := repoLink{
			ID:          repo.ID,
			FullName:    repo.FullName(),
			URL:         repo.URL,
			NewIssueURL: repo.NewIssueURL(),
		}
		if issue != nil {
			link.NewIssueURL = repo.NewIssueURLFor(issue)
		}
		links = append(links, link)
	}
	return links, nil
}

// render executes a template into a buffer first so a template failure
// still produces a clean 500.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("render template", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderErrorPage(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("page failed", zap.Error(err))
	}
	s.render(w, status, "error", errorView{Message: userMessage(err), Status: status})
}

// renderErrorFragment answers 200 so htmx swaps the message into place.
func (s *Server) renderErrorFragment(w http.ResponseWriter, err error) {
	s.render(w, http.StatusOK, "error_fragment", errorView{Message: userMessage(err), Status: statusFor(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode json", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) logFailure(r *http.Request, err error) {
	level := zap.WarnLevel
	if statusFor(err) >= http.StatusInternalServerError {
		level = zap.ErrorLevel
	}
	s.logger.Log(level, "request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
}

func acceptsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func toIssueJSON(issue *domain.Issue) issueJSON {
	return issueJSON{
		CreatedAt:    issue.CreatedAt,
		ID:           issue.ID,
		Title:        issue.Title,
		Story:        issue.Story,
		Criteria:     issue.Criteria,
		Requirements: issue.Requirements,
		Markdown:     issue.Markdown(),
	}
}
