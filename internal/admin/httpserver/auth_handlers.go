package httpserver

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	adminauth "github.com/hexfield/catalog-admin/internal/admin/auth"
	custommw "github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
	"github.com/hexfield/catalog-admin/internal/admin/httpserver/ui"
	authtpl "github.com/hexfield/catalog-admin/internal/admin/templates/auth"
)

type authHandlers struct {
	service   adminauth.Service
	ui        *ui.Handlers
	basePath  string
	loginPath string
}

func newAuthHandlers(service adminauth.Service, uiHandlers *ui.Handlers, basePath, loginPath string) *authHandlers {
	if service == nil {
		panic("auth: service is required")
	}
	if strings.TrimSpace(basePath) == "" {
		basePath = "/"
	}
	if strings.TrimSpace(loginPath) == "" {
		loginPath = joinPath(basePath, "/login")
	}
	return &authHandlers{
		service:   service,
		ui:        uiHandlers,
		basePath:  basePath,
		loginPath: loginPath,
	}
}

func (h *authHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.isAuthenticated(r) && !forceLogin(r) {
		target := h.redirectTarget(r.URL.Query().Get("next"))
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	data := h.buildLoginPageData(r, nil)
	h.renderLoginPage(w, r, data, http.StatusOK)
}

func (h *authHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		state := &loginFormState{Error: "The form could not be read. Please try again."}
		h.renderLoginPage(w, r, h.buildLoginPageData(r, state), http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	recordedNext := r.PostFormValue("next")

	state := &loginFormState{
		Username: username,
		Next:     recordedNext,
	}

	if username == "" || password == "" {
		state.Error = "Enter your email and password."
		h.renderLoginPage(w, r, h.buildLoginPageData(r, state), http.StatusBadRequest)
		return
	}

	creds, err := h.service.SignIn(r.Context(), username, password)
	if err != nil {
		log.Printf("admin login failed: %v", err)
		state.Error = h.errorMessageFor(err)
		h.renderLoginPage(w, r, h.buildLoginPageData(r, state), http.StatusUnauthorized)
		return
	}

	if sess, ok := custommw.SessionFromContext(r.Context()); ok && sess != nil {
		sess.SetCredentials(username, creds.Token, creds.Expiry)
	}

	target := h.redirectTarget(recordedNext)
	if custommw.IsHTMXRequest(r.Context()) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *authHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := custommw.SessionFromContext(r.Context()); ok && sess != nil {
		if h.ui != nil {
			h.ui.DropWorkspace(sess.ID())
		}
		sess.Destroy()
	}

	redirect := h.loginURLWithParams(map[string]string{
		"status": "logged_out",
	})

	if custommw.IsHTMXRequest(r.Context()) {
		w.Header().Set("HX-Redirect", redirect)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

type loginFormState struct {
	Username string
	Next     string
	Error    string
	Message  string
}

func (h *authHandlers) buildLoginPageData(r *http.Request, state *loginFormState) authtpl.LoginPageData {
	q := url.Values{}
	if r.URL != nil {
		q = r.URL.Query()
	}

	next := ""
	if state != nil && state.Next != "" {
		next = h.normalizeNext(state.Next)
	} else {
		next = h.normalizeNext(q.Get("next"))
	}

	message := ""
	if state != nil && strings.TrimSpace(state.Message) != "" {
		message = state.Message
	} else {
		message = h.messageForQuery(q)
	}

	errorText := ""
	if state != nil {
		errorText = state.Error
	}

	username := ""
	if state != nil {
		username = state.Username
	} else {
		username = strings.TrimSpace(q.Get("username"))
	}

	return authtpl.LoginPageData{
		Username:  username,
		Message:   message,
		Error:     errorText,
		Next:      next,
		LoginPath: h.loginPath,
		BasePath:  h.basePath,
		CSRFToken: custommw.CSRFTokenFromContext(r.Context()),
	}
}

func (h *authHandlers) renderLoginPage(w http.ResponseWriter, r *http.Request, data authtpl.LoginPageData, status int) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	templ.Handler(authtpl.LoginPage(data)).ServeHTTP(w, r)
}

func (h *authHandlers) isAuthenticated(r *http.Request) bool {
	sess, ok := custommw.SessionFromContext(r.Context())
	if !ok || sess == nil {
		return false
	}
	return sess.Authenticated()
}

func (h *authHandlers) errorMessageFor(err error) string {
	switch {
	case err == nil:
		return "An unknown error occurred."
	case errors.Is(err, adminauth.ErrInvalidCredentials):
		return "Invalid email or password."
	default:
		return "Sign-in failed. Please try again in a moment."
	}
}

func (h *authHandlers) messageForQuery(q url.Values) string {
	if q == nil {
		return ""
	}
	if status := q.Get("status"); status == "logged_out" {
		return "You have been signed out."
	}
	switch q.Get("reason") {
	case custommw.ReasonTokenExpired, "expired":
		return "Your session has expired. Please sign in again."
	case custommw.ReasonMissingToken:
		return "Please sign in to continue."
	case custommw.ReasonTokenInvalid:
		return "Your credentials are no longer valid. Please sign in again."
	default:
		return ""
	}
}

func (h *authHandlers) redirectTarget(raw string) string {
	next := h.normalizeNext(raw)
	if next != "" {
		return next
	}
	return joinPath(h.basePath, "/products")
}

func (h *authHandlers) loginURLWithParams(params map[string]string) string {
	parsed, err := url.Parse(h.loginPath)
	if err != nil {
		return h.loginPath
	}
	q := parsed.Query()
	for key, val := range params {
		if strings.TrimSpace(val) == "" {
			continue
		}
		q.Set(key, val)
	}
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

func forceLogin(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get("force"))) {
	case "1", "true", "yes", "force":
		return true
	default:
		return false
	}
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	trim := func(p string) string {
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		for len(p) > 1 && strings.HasSuffix(p, "/") {
			p = strings.TrimSuffix(p, "/")
		}
		return p
	}
	return trim(a) == trim(b)
}

func (h *authHandlers) normalizeNext(raw string) string {
	sanitized := sanitizeNextTarget(h.basePath, raw)
	if sanitized == "" {
		return ""
	}

	if h.loginPath != "" {
		if samePath(pathOnly(sanitized), h.loginPath) {
			return ""
		}
	}
	return sanitized
}

func sanitizeNextTarget(basePath, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" || parsed.Host != "" {
		return ""
	}

	pathValue := parsed.Path
	if pathValue == "" {
		pathValue = "/"
	}

	unescaped, err := url.PathUnescape(pathValue)
	if err != nil {
		return ""
	}
	if strings.Contains(unescaped, "\\") {
		return ""
	}

	cleaned := path.Clean(unescaped)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	if strings.HasPrefix(cleaned, "//") {
		return ""
	}

	normalisedBase := normalizeBasePath(basePath)
	if normalisedBase != "/" && !hasSafePrefix(cleaned, normalisedBase) {
		return ""
	}

	target := cleaned
	if parsed.RawQuery != "" {
		target += "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		target += "#" + parsed.Fragment
	}
	return target
}

func hasSafePrefix(pathValue, base string) bool {
	if base == "/" {
		return strings.HasPrefix(pathValue, "/")
	}
	if !strings.HasPrefix(pathValue, base) {
		return false
	}
	if len(pathValue) == len(base) {
		return true
	}
	return pathValue[len(base)] == '/'
}

func pathOnly(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.Path
}
