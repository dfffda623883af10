package handler

import (
	"errors"
	"net/http"
	"newsroom/internal/core"
	"newsroom/internal/http/handler/middleware"
	"newsroom/internal/http/payload"
	"newsroom/internal/http/view"
	"strconv"

	"go.uber.org/zap"
)

var (
	Index        = "GET /{$}"
	LoginView    = "GET /login"
	Login        = "POST /login"
	RegisterView = "GET /register"
	Register     = "POST /register"
	Dashboard    = "GET /dashboard"
	AddNewsView  = "GET /add-news"
	AddNews      = "POST /add-news"
	DeleteNews   = "GET /delete-news/{id}"
	EditNewsView = "GET /edit-news/{id}"
	EditNews     = "POST /edit-news/{id}"
	Logout       = "GET /logout"
)

type NewsHandler struct {
	logs        *zap.SugaredLogger
	formDecoder FormDecoder
	newsroom    NewsService
	sessions    SessionStore
	views       *view.Views
}

func NewNewsHandler(logger *zap.SugaredLogger, formDecoder FormDecoder, newsService NewsService, sessions SessionStore, views *view.Views) *NewsHandler {
	return &NewsHandler{
		logs:        logger,
		formDecoder: formDecoder,
		newsroom:    newsService,
		sessions:    sessions,
		views:       views,
	}
}

func (h *NewsHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	articles, err := h.newsroom.ListArticles(r.Context())
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to list articles",
			"error", err,
			"handler", Index,
			"request_id", requestId)
		return
	}

	h.render(w, "index", listPage{Articles: articles}, requestId)
}

func (h *NewsHandler) HandleLoginView(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login", formPage{}, h.requestID(r))
}

func (h *NewsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var form payload.LoginForm
	if err := h.formDecoder.DecodeAndValidateForm(r, &form); err != nil {
		h.render(w, "login", formPage{Error: true}, requestId)
		h.logs.Errorw("failed to decode and validate login form",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	identity, err := h.newsroom.Authenticate(r.Context(), form.ToAuthMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.render(w, "login", formPage{Error: true}, requestId)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	if err := h.sessions.Create(w, identity); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to create session",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *NewsHandler) HandleRegisterView(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register", formPage{}, h.requestID(r))
}

func (h *NewsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var form payload.RegisterForm
	if err := h.formDecoder.DecodeAndValidateForm(r, &form); err != nil {
		h.render(w, "register", formPage{Error: true}, requestId)
		h.logs.Errorw("failed to decode and validate register form",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	_, err := h.newsroom.Register(r.Context(), form.ToRegisterMessage())
	if err != nil {
		if errors.Is(err, core.ErrDuplicateUsername) || errors.Is(err, core.ErrPasswordMismatch) {
			h.render(w, "register", formPage{Error: true}, requestId)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *NewsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	identity, ok := h.sessions.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	articles, err := h.newsroom.ListArticles(r.Context())
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to list articles",
			"error", err,
			"handler", Dashboard,
			"request_id", requestId)
		return
	}

	h.render(w, "dashboard", listPage{Articles: articles, Identity: identity}, requestId)
}

func (h *NewsHandler) HandleAddNewsView(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.render(w, "add_news", formPage{}, h.requestID(r))
}

func (h *NewsHandler) HandleAddNews(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	identity, ok := h.sessions.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var form payload.ArticleForm
	if err := h.formDecoder.DecodeAndValidateForm(r, &form); err != nil {
		h.render(w, "add_news", formPage{Error: true}, requestId)
		h.logs.Errorw("failed to decode and validate article form",
			"error", err,
			"handler", AddNews,
			"request_id", requestId)
		return
	}

	_, err := h.newsroom.CreateArticle(r.Context(), identity, form.Title, form.Content, form.Author)
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to create article",
			"error", err,
			"handler", AddNews,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleDeleteNews deletes the article only when the caller owns it. A
// missing article and a foreign owner both redirect back to the dashboard
// with no error detail.
func (h *NewsHandler) HandleDeleteNews(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	identity, ok := h.sessions.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := h.articleID(r)
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	err = h.newsroom.DeleteArticle(r.Context(), identity, id)
	if err != nil && !errors.Is(err, core.ErrArticleNotFound) {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to delete article",
			"error", err,
			"handler", DeleteNews,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *NewsHandler) HandleEditNewsView(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	if _, ok := h.sessions.Current(r); !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := h.articleID(r)
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	article, err := h.newsroom.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrArticleNotFound) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to get article",
			"error", err,
			"handler", EditNewsView,
			"request_id", requestId)
		return
	}

	h.render(w, "edit_news", articlePage{Article: article}, requestId)
}

// HandleEditNews updates any existing article for any logged-in user; the
// session is the only gate here, ownership is enforced on delete only.
func (h *NewsHandler) HandleEditNews(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	if _, ok := h.sessions.Current(r); !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := h.articleID(r)
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	var form payload.ArticleForm
	if err := h.formDecoder.DecodeAndValidateForm(r, &form); err != nil {
		article, getErr := h.newsroom.GetArticle(r.Context(), id)
		if getErr != nil {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		h.render(w, "edit_news", articlePage{Article: article, Error: true}, requestId)
		h.logs.Errorw("failed to decode and validate article form",
			"error", err,
			"handler", EditNews,
			"request_id", requestId)
		return
	}

	err = h.newsroom.UpdateArticle(r.Context(), id, form.Title, form.Content, form.Author)
	if err != nil {
		if errors.Is(err, core.ErrArticleNotFound) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to update article",
			"error", err,
			"handler", EditNews,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *NewsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *NewsHandler) requestID(r *http.Request) string {
	requestId := ""
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *NewsHandler) articleID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *NewsHandler) render(w http.ResponseWriter, name string, data any, requestId string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.views.Render(w, name, data); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render view",
			"error", err,
			"view", name,
			"request_id", requestId)
	}
}
