// Package fakehrm serves a minimal OrangeHRM look-alike for integration
// tests: a login page with the same locator-relevant markup as the real
// application and a dashboard page behind it. It lets the full browser stack
// run against localhost instead of a shared demo instance.
package fakehrm

import (
	"net/http"
	"net/http/httptest"
)

// Credentials accepted by the fake login form.
const (
	ValidUsername = "Admin"
	ValidPassword = "admin123"
)

// Validation strings displayed by the fake form, matching the real product.
const (
	UsernameRequired   = "Username is required"
	PasswordRequired   = "Password is required"
	InvalidCredentials = "Invalid credentials"
)

const loginPage = `<!DOCTYPE html>
<html>
<head><title>OrangeHRM</title></head>
<body>
	<div class="oxd-alert" id="credentials-alert" style="display:none">
		<p class="oxd-text oxd-text--p oxd-alert-content-text">` + InvalidCredentials + `</p>
	</div>
	<div class="orangehrm-login-slot-wrapper">
		<div class="orangehrm-login-form">
			<form>
				<div>
					<div>
						<input placeholder="Username" />
						<span class="oxd-input-field-error-message" id="username-error" style="display:none">` + UsernameRequired + `</span>
					</div>
				</div>
				<div>
					<div>
						<input type="password" placeholder="Password" />
						<span class="oxd-input-field-error-message" id="password-error" style="display:none">` + PasswordRequired + `</span>
					</div>
				</div>
				<button type="button">Login</button>
			</form>
		</div>
	</div>
	<script>
		document.querySelector('button').addEventListener('click', function () {
			var username = document.querySelector("input[placeholder='Username']").value;
			var password = document.querySelector("input[placeholder='Password']").value;
			document.getElementById('username-error').style.display = username ? 'none' : 'inline';
			document.getElementById('password-error').style.display = password ? 'none' : 'inline';
			if (!username || !password) {
				return;
			}
			if (username === '` + ValidUsername + `' && password === '` + ValidPassword + `') {
				window.location = '/web/index.php/dashboard/index';
			} else {
				document.getElementById('credentials-alert').style.display = 'block';
			}
		});
	</script>
</body>
</html>`

const dashboardPage = `<!DOCTYPE html>
<html>
<head><title>OrangeHRM</title></head>
<body>
	<header class="oxd-topbar-header">
		<h6 class="oxd-topbar-header-breadcrumb-module">Dashboard</h6>
	</header>
</body>
</html>`

// NewServer starts the fake application. The caller owns the server; the
// environment base URL is srv.URL + "/web/index.php".
func NewServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/web/index.php/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(loginPage))
	})
	mux.HandleFunc("/web/index.php/dashboard/index", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(dashboardPage))
	})
	return httptest.NewServer(mux)
}

// BaseURL returns the environment base URL for a running fake server.
func BaseURL(srv *httptest.Server) string {
	return srv.URL + "/web/index.php"
}
