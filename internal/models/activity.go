package models

import "time"

// ActivityKind is the user_activity enum. Values match the database labels.
type ActivityKind string

const (
	ActivitySignUp             ActivityKind = "SIGN UP"
	ActivityLogin              ActivityKind = "LOGIN"
	ActivityUpdateProfile      ActivityKind = "UPDATE PROFILE"
	ActivityRemoveProfile      ActivityKind = "REMOVE PROFILE"
	ActivityAnnouncement       ActivityKind = "ANNOUNCEMENT"
	ActivityAdminAuthorize     ActivityKind = "ADMIN-AUTHORIZE"
	ActivityAdminRemoveProfile ActivityKind = "ADMIN-REMOVE PROFILE"
	ActivityPostTrialSurvey    ActivityKind = "POST-TRIAL SURVEY"
	ActivityResetPassword      ActivityKind = "RESET PASSWORD"
	ActivityUpdatePhoto        ActivityKind = "UPDATE PHOTO"
	ActivityUpdateName         ActivityKind = "UPDATE NAME"
	ActivityUpdateJob          ActivityKind = "UPDATE JOB"
	ActivityUpdateOffice       ActivityKind = "UPDATE OFFICE"
	ActivityUpdateDemographic  ActivityKind = "UPDATE DEMOGRAPHIC"
	ActivityUpdateIntern       ActivityKind = "UPDATE INTERN"
)

var activityByName = map[string]ActivityKind{
	"SIGN_UP":              ActivitySignUp,
	"LOGIN":                ActivityLogin,
	"UPDATE_PROFILE":       ActivityUpdateProfile,
	"REMOVE_PROFILE":       ActivityRemoveProfile,
	"ANNOUNCEMENT":         ActivityAnnouncement,
	"ADMIN_AUTHORIZE":      ActivityAdminAuthorize,
	"ADMIN_REMOVE_PROFILE": ActivityAdminRemoveProfile,
	"POST_TRIAL_SURVEY":    ActivityPostTrialSurvey,
	"RESET_PASSWORD":       ActivityResetPassword,
	"UPDATE_PHOTO":         ActivityUpdatePhoto,
	"UPDATE_NAME":          ActivityUpdateName,
	"UPDATE_JOB":           ActivityUpdateJob,
	"UPDATE_OFFICE":        ActivityUpdateOffice,
	"UPDATE_DEMOGRAPHIC":   ActivityUpdateDemographic,
	"UPDATE_INTERN":        ActivityUpdateIntern,
}

// ParseActivityKind accepts either the constant name (UPDATE_PHOTO) or the stored label (UPDATE PHOTO).
func ParseActivityKind(raw string) (ActivityKind, bool) {
	if kind, ok := activityByName[raw]; ok {
		return kind, true
	}
	for _, kind := range activityByName {
		if string(kind) == raw {
			return kind, true
		}
	}
	return "", false
}

// ActivityEntry is one append-only audit record.
type ActivityEntry struct {
	WorkEmail  string       `db:"work_email" json:"work_email"`
	Activity   ActivityKind `db:"activity" json:"activity"`
	RecordedAt time.Time    `db:"-" json:"recorded_at"`
}
