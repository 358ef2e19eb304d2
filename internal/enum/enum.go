package enum

// ── Group A: Catalog classification (CHECK constrained in DB) ──

const (
	CategoryTypeFood    = "FOOD"
	CategoryTypeService = "SERVICE"
)

const (
	ServiceCodeFurniture = "FURNITURE_DECOR"
	ServiceCodeStaff     = "STAFF"
)

const (
	QuoteStatusDraft     = "DRAFT"
	QuoteStatusSubmitted = "SUBMITTED"
	QuoteStatusAccepted  = "ACCEPTED"
	QuoteStatusCancelled = "CANCELLED"
)

// ── Group C: Borderline (CHECK constrained in DB) ──

const (
	UserRoleOwner   = "OWNER"
	UserRoleManager = "MANAGER"
	UserRoleSales   = "SALES"
)

// ── Group B: Configurable labels (no DB constraint) ──

const (
	EventTypeWedding     = "WEDDING"
	EventTypeBirthday    = "BIRTHDAY"
	EventTypeCorporate   = "CORPORATE"
	EventTypeAnniversary = "ANNIVERSARY"
	EventTypeOther       = "OTHER"
)

const (
	UnitSet    = "set"
	UnitPerson = "person"
)
