package domain

// Action names an operation guarded by the role policy.
type Action string

const (
	ActionRegister         Action = "register"
	ActionLogin            Action = "login"
	ActionBrowseJobs       Action = "browse_jobs"
	ActionViewProfile      Action = "view_profile"
	ActionPostJob          Action = "post_job"
	ActionListOwnJobs      Action = "list_own_jobs"
	ActionDeleteOwnJob     Action = "delete_own_job"
	ActionViewApplicants   Action = "view_applicants"
	ActionApplyJob         Action = "apply_job"
	ActionListUsers        Action = "list_users"
	ActionListAllJobs      Action = "list_all_jobs"
	ActionListApplications Action = "list_applications"
	ActionDeleteUser       Action = "delete_user"
	ActionDeleteJob        Action = "delete_job"
)

// requirement describes who may perform an action.
type requirement struct {
	public        bool
	authenticated bool
	role          Role
}

var policy = map[Action]requirement{
	ActionRegister:   {public: true},
	ActionLogin:      {public: true},
	ActionBrowseJobs: {public: true},

	ActionViewProfile: {authenticated: true},

	ActionPostJob:        {role: RoleEmployer},
	ActionListOwnJobs:    {role: RoleEmployer},
	ActionDeleteOwnJob:   {role: RoleEmployer},
	ActionViewApplicants: {role: RoleEmployer},

	ActionApplyJob: {role: RoleWorker},

	ActionListUsers:        {role: RoleAdmin},
	ActionListAllJobs:      {role: RoleAdmin},
	ActionListApplications: {role: RoleAdmin},
	ActionDeleteUser:       {role: RoleAdmin},
	ActionDeleteJob:        {role: RoleAdmin},
}

// Allowed reports whether role may perform action. Unknown actions are denied.
func Allowed(role Role, action Action) bool {
	req, ok := policy[action]
	if !ok {
		return false
	}
	switch {
	case req.public:
		return true
	case req.authenticated:
		return role.IsValid()
	default:
		return role == req.role
	}
}

// IsPublic reports whether action needs no authentication at all.
func IsPublic(action Action) bool {
	return policy[action].public
}

// RequiredRole returns the single role an action is restricted to, if any.
func RequiredRole(action Action) (Role, bool) {
	req, ok := policy[action]
	if !ok || req.role == "" {
		return "", false
	}
	return req.role, true
}
