package audit

import "time"

// Event is emitted from domain logic to capture key admin actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	AdminID   string    `json:"admin_id,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Action    string    `json:"action"`
	Reason    string    `json:"reason,omitempty"`
}

type AuditEvent string

const (
	EventAdminCreated      AuditEvent = "admin_created"
	EventOTPIssued         AuditEvent = "otp_issued"
	EventOTPVerified       AuditEvent = "otp_verified"
	EventSessionIssued     AuditEvent = "session_issued"
	EventAuthFailed        AuditEvent = "auth_failed"
	EventMentorApproved    AuditEvent = "mentor_approved"
	EventMentorRejected    AuditEvent = "mentor_rejected"
	EventUserDeleted       AuditEvent = "user_deleted"
	EventTopMentorToggled  AuditEvent = "top_mentor_toggled"
	EventBannerReplaced    AuditEvent = "banner_replaced"
	EventNotificationError AuditEvent = "notification_failed"
)
