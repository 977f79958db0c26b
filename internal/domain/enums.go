package domain

// PublicationKind is the variant tag of a publication. It is fixed at creation.
type PublicationKind string

const (
	PublicationKindRoutine        PublicationKind = "ROUTINE"
	PublicationKindNutritionPlan  PublicationKind = "NUTRITION_PLAN"
	PublicationKindProgressReport PublicationKind = "PROGRESS_REPORT"
	PublicationKindGroupPost      PublicationKind = "GROUP_POST"
)

func (k PublicationKind) String() string { return string(k) }

func (k PublicationKind) IsValid() bool {
	switch k {
	case PublicationKindRoutine, PublicationKindNutritionPlan,
		PublicationKindProgressReport, PublicationKindGroupPost:
		return true
	}
	return false
}

// GroupType is the visibility of a group.
type GroupType string

const (
	GroupTypePublic  GroupType = "PUBLIC"
	GroupTypePrivate GroupType = "PRIVATE"
)

func (g GroupType) String() string { return string(g) }

func (g GroupType) IsValid() bool {
	switch g {
	case GroupTypePublic, GroupTypePrivate:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser       UserRole = "USER"
	UserRoleSpecialist UserRole = "SPECIALIST"
	UserRoleAdmin      UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleSpecialist, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsSpecialist() bool {
	return r == UserRoleSpecialist
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypePublication EntityType = "PUBLICATION"
	EntityTypeGroup       EntityType = "GROUP"
	EntityTypeComment     EntityType = "COMMENT"
	EntityTypeShare       EntityType = "SHARE"
	EntityTypeExercise    EntityType = "EXERCISE"
	EntityTypeGoal        EntityType = "GOAL"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypePublication, EntityTypeGroup, EntityTypeComment,
		EntityTypeShare, EntityTypeExercise, EntityTypeGoal:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate    AuditAction = "CREATE"
	AuditActionUpdate    AuditAction = "UPDATE"
	AuditActionJoin      AuditAction = "JOIN"
	AuditActionAddMember AuditAction = "ADD_MEMBER"
	AuditActionAssign    AuditAction = "ASSIGN"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionJoin,
		AuditActionAddMember, AuditActionAssign:
		return true
	}
	return false
}

// EventType names a notification emitted after a successful commit.
type EventType string

const (
	EventPublicationCreated  EventType = "publication.created"
	EventPublicationShared   EventType = "publication.shared"
	EventPublicationVerified EventType = "publication.verified"
	EventCommentCreated      EventType = "comment.created"
	EventGroupCreated        EventType = "group.created"
	EventGroupMemberAdded    EventType = "group.member_added"
	EventGoalCreated         EventType = "goal.created"
)

func (e EventType) String() string { return string(e) }
