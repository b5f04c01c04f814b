package router

import "github.com/aigymlabs/fitcoach/internal/client/view"

// Key is a location token, the client-side equivalent of a URL fragment.
type Key string

const (
	KeyLogin      Key = "login"
	KeyRegister   Key = "register"
	KeyAuthChoice Key = "auth-choice"
	KeyDashboard  Key = "dashboard"
	KeyProfile    Key = "dashboard/profile"
	KeyDiet       Key = "dashboard/diet"
	KeyWorkouts   Key = "dashboard/workouts"
	KeyPose       Key = "dashboard/pose"
	KeyLogs       Key = "dashboard/logs"
	KeyAdmin      Key = "dashboard/admin"
)

// Route maps a location key to its views and guard requirements. Page is
// empty for auth-family routes; RequiresAuth splits the table into the two
// families the guards act on.
type Route struct {
	Key           Key
	TopView       view.ID
	Page          view.ID
	RequiresAuth  bool
	RequiresAdmin bool
}

var routes = map[Key]Route{
	KeyLogin:      {Key: KeyLogin, TopView: view.Login},
	KeyRegister:   {Key: KeyRegister, TopView: view.Register},
	KeyAuthChoice: {Key: KeyAuthChoice, TopView: view.AuthChoice},
	KeyDashboard:  {Key: KeyDashboard, TopView: view.Dashboard, Page: view.PageOverview, RequiresAuth: true},
	KeyProfile:    {Key: KeyProfile, TopView: view.Dashboard, Page: view.PageProfile, RequiresAuth: true},
	KeyDiet:       {Key: KeyDiet, TopView: view.Dashboard, Page: view.PageDiet, RequiresAuth: true},
	KeyWorkouts:   {Key: KeyWorkouts, TopView: view.Dashboard, Page: view.PageWorkouts, RequiresAuth: true},
	KeyPose:       {Key: KeyPose, TopView: view.Dashboard, Page: view.PagePose, RequiresAuth: true},
	KeyLogs:       {Key: KeyLogs, TopView: view.Dashboard, Page: view.PageLogs, RequiresAuth: true},
	KeyAdmin:      {Key: KeyAdmin, TopView: view.Dashboard, Page: view.PageAdmin, RequiresAuth: true, RequiresAdmin: true},
}

// Lookup returns the route for key, if any.
func Lookup(key Key) (Route, bool) {
	r, ok := routes[key]
	return r, ok
}
