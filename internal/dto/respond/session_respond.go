package respond

// ProfileRespond public view of a profile
type ProfileRespond struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Status    string  `json:"status"`
	AvatarURL *string `json:"avatar_url"`
}

// CurrentSessionRespond Session is null when nobody is signed in
type CurrentSessionRespond struct {
	Session *ProfileRespond `json:"session"`
}

// GateRespond Redirect is empty when the view may render
type GateRespond struct {
	View          string `json:"view"`
	Authenticated bool   `json:"authenticated"`
	Redirect      string `json:"redirect,omitempty"`
}

// DashboardRespond TabData holds the active tab's list
type DashboardRespond struct {
	Profile   ProfileRespond `json:"profile"`
	Tabs      []string       `json:"tabs"`
	ActiveTab string         `json:"active_tab"`
	TabData   any            `json:"tab_data"`
}
