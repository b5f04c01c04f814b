package common

// SessionCookieName is the cookie that carries the session token on every
// authenticated API request.
const SessionCookieName = "fitcoach_session"
