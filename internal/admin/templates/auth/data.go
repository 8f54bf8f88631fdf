package auth

// LoginPageData encapsulates rendering state for the admin login screen.
type LoginPageData struct {
	Username  string
	Message   string
	Error     string
	Next      string
	LoginPath string
	BasePath  string
	CSRFToken string
}
