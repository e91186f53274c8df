package user

type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

// NavigationFor returns the sidebar entries for a role. Unknown roles get none.
func NavigationFor(role Role) []NavItem {
	switch role {
	case RoleAdmin:
		return []NavItem{
			{Label: "Dashboard", Href: "/dashboard", Icon: "home"},
			{Label: "Create Task", Href: "/tasks/create", Icon: "plus"},
			{Label: "All Tasks", Href: "/tasks", Icon: "clipboard"},
			{Label: "Submissions", Href: "/submissions", Icon: "file-check"},
			{Label: "Documents", Href: "/documents", Icon: "folder"},
			{Label: "Users", Href: "/users", Icon: "users"},
			{Label: "Checklist Templates", Href: "/checklist-templates", Icon: "list-checks"},
			{Label: "Settings", Href: "/settings", Icon: "settings"},
		}
	case RoleDriver:
		return []NavItem{
			{Label: "Dashboard", Href: "/dashboard", Icon: "home"},
			{Label: "My Tasks", Href: "/tasks", Icon: "truck"},
			{Label: "My Checklists", Href: "/checklists", Icon: "list-checks"},
			{Label: "Documents", Href: "/documents", Icon: "folder"},
		}
	case RoleWarehouse:
		return []NavItem{
			{Label: "Dashboard", Href: "/dashboard", Icon: "home"},
			{Label: "Tasks", Href: "/tasks", Icon: "package"},
			{Label: "My Checklists", Href: "/checklists", Icon: "list-checks"},
			{Label: "Submissions", Href: "/submissions", Icon: "file-check"},
			{Label: "Documents", Href: "/documents", Icon: "folder"},
		}
	case RoleExecutive, RoleOperationalLead:
		return []NavItem{
			{Label: "Dashboard", Href: "/dashboard", Icon: "home"},
			{Label: "All Tasks", Href: "/tasks", Icon: "clipboard"},
			{Label: "Submissions", Href: "/submissions", Icon: "file-check"},
			{Label: "Documents", Href: "/documents", Icon: "folder"},
			{Label: "Users", Href: "/users", Icon: "users"},
		}
	default:
		return []NavItem{}
	}
}
