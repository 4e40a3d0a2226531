package dto

// Present is a pointer so a missing field can be told apart from false.
type AttendanceUpsertDTO struct {
	SessionID int64 `json:"session_id" validate:"required"`
	MemberID  int64 `json:"member_id" validate:"required"`
	Present   *bool `json:"present" validate:"required"`
}

type AttendanceEntry struct {
	MemberID int64 `json:"member_id"`
	Present  bool  `json:"present"`
}
